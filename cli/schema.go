// FILE: lixenwraith/cliconf/cli/schema.go
package cli

import (
	"github.com/lixenwraith/cliconf"
)

// ProgramName is the binary name shown in help output and used for the data directory
const ProgramName = "ledgerd"

// Global fields

var flagConfig = cliconf.Field[Document, string]{
	Key:     "config",
	Name:    "config",
	Short:   "c",
	Help:    "Specify a configuration. CONFIG may be a path to a TOML, YAML or JSON file.",
	Kind:    cliconf.Defaulted,
	Default: "$BASE/config.toml",
}

var flagNoConfig = cliconf.Field[Document, bool]{
	Key:  "no_config",
	Name: "no-config",
	Help: "Don't load a configuration file.",
	Kind: cliconf.Plain,
}

var flagTestnet = cliconf.Field[Document, bool]{
	Key:  "testnet",
	Name: "testnet",
	Help: "Use the test network. Equivalent to --chain testnet.",
	Kind: cliconf.Plain,
}

var flagMode = cliconf.Field[Document, string]{
	Key:     "mode",
	Name:    "mode",
	Help:    "Set the operating mode. MODE can be one of: last, active, passive, dark, offline.",
	Kind:    cliconf.Defaulted,
	Default: "last",
	Config:  func(d *Document) (string, bool) { return deref(d.node().Mode) },
}

var flagChain = cliconf.Field[Document, string]{
	Key:     "chain",
	Name:    "chain",
	Help:    "Specify the blockchain type. CHAIN may be either a JSON chain specification file or a built-in chain name.",
	Kind:    cliconf.Defaulted,
	Default: "foundation",
	Config:  func(d *Document) (string, bool) { return deref(d.node().Chain) },
}

var flagBasePath = cliconf.Field[Document, string]{
	Key:    "base_path",
	Name:   "base-path",
	Short:  "d",
	Help:   "Specify the base data storage path.",
	Kind:   cliconf.OptionalPassthrough,
	Config: func(d *Document) (string, bool) { return deref(d.node().BasePath) },
}

var flagDBPath = cliconf.Field[Document, string]{
	Key:    "db_path",
	Name:   "db-path",
	Help:   "Specify the database directory path.",
	Kind:   cliconf.OptionalPassthrough,
	Config: func(d *Document) (string, bool) { return deref(d.node().DBPath) },
}

var flagKeysPath = cliconf.Field[Document, string]{
	Key:     "keys_path",
	Name:    "keys-path",
	Help:    "Specify the path for JSON key files to be found.",
	Kind:    cliconf.Defaulted,
	Default: "$BASE/keys",
	Config:  func(d *Document) (string, bool) { return deref(d.node().KeysPath) },
}

var flagIdentity = cliconf.Field[Document, string]{
	Key:    "identity",
	Name:   "identity",
	Help:   "Specify your node's name.",
	Kind:   cliconf.Defaulted,
	Config: func(d *Document) (string, bool) { return deref(d.node().Identity) },
}

var flagPort = cliconf.Field[Document, uint16]{
	Key:     "port",
	Name:    "port",
	Help:    "Override the port on which the node should listen.",
	Kind:    cliconf.Defaulted,
	Default: 30303,
	Config:  func(d *Document) (uint16, bool) { return deref(d.network().Port) },
}

var flagMinPeers = cliconf.Field[Document, uint16]{
	Key:     "min_peers",
	Name:    "min-peers",
	Help:    "Try to maintain at least NUM peers.",
	Kind:    cliconf.Defaulted,
	Default: 25,
	Config:  func(d *Document) (uint16, bool) { return deref(d.network().MinPeers) },
}

var flagMaxPeers = cliconf.Field[Document, uint16]{
	Key:     "max_peers",
	Name:    "max-peers",
	Help:    "Allow up to NUM peers.",
	Kind:    cliconf.Defaulted,
	Default: 50,
	Config:  func(d *Document) (uint16, bool) { return deref(d.network().MaxPeers) },
}

var flagNAT = cliconf.Field[Document, string]{
	Key:     "nat",
	Name:    "nat",
	Help:    "Specify method to use for determining public address. Must be one of: any, none, upnp, extip:<IP>.",
	Kind:    cliconf.Defaulted,
	Default: "any",
	Config:  func(d *Document) (string, bool) { return deref(d.network().NAT) },
}

var flagNetworkID = cliconf.Field[Document, uint64]{
	Key:    "network_id",
	Name:   "network-id",
	Help:   "Override the network identifier from the chain we are on.",
	Kind:   cliconf.OptionalPassthrough,
	Config: func(d *Document) (uint64, bool) { return deref(d.network().ID) },
}

var flagJSONRPCPort = cliconf.Field[Document, uint16]{
	Key:     "jsonrpc_port",
	Name:    "jsonrpc-port",
	Help:    "Specify the port portion of the HTTP JSON-RPC API server.",
	Kind:    cliconf.Defaulted,
	Default: 8545,
	Config:  func(d *Document) (uint16, bool) { return deref(d.rpc().Port) },
}

var flagJSONRPCInterface = cliconf.Field[Document, string]{
	Key:     "jsonrpc_interface",
	Name:    "jsonrpc-interface",
	Help:    "Specify the hostname portion of the HTTP JSON-RPC API server, IP should be an interface's IP address, or all (all interfaces) or local.",
	Kind:    cliconf.Defaulted,
	Default: "local",
	Config:  func(d *Document) (string, bool) { return deref(d.rpc().Interface) },
}

var flagJSONRPCAPIs = cliconf.Field[Document, []string]{
	Key:     "jsonrpc_apis",
	Name:    "jsonrpc-apis",
	Help:    "Specify the APIs available through the HTTP JSON-RPC interface, as a comma-delimited list.",
	Kind:    cliconf.Defaulted,
	Default: []string{"web3", "eth", "net", "personal", "traces", "rpc"},
	Config:  func(d *Document) ([]string, bool) { return slice(d.rpc().APIs) },
}

var flagIPCPath = cliconf.Field[Document, string]{
	Key:     "ipc_path",
	Name:    "ipc-path",
	Help:    "Specify custom path for JSON-RPC over IPC service.",
	Kind:    cliconf.Defaulted,
	Default: "$BASE/jsonrpc.ipc",
	Config:  func(d *Document) (string, bool) { return deref(d.ipc().Path) },
}

var flagPruning = cliconf.Field[Document, string]{
	Key:     "pruning",
	Name:    "pruning",
	Help:    "Configure pruning of the state/storage trie. METHOD may be one of auto, archive, fast.",
	Kind:    cliconf.Defaulted,
	Default: "auto",
	Config:  func(d *Document) (string, bool) { return deref(d.footprint().Pruning) },
}

var flagKeysIterations = cliconf.Field[Document, uint32]{
	Key:     "keys_iterations",
	Name:    "keys-iterations",
	Help:    "Specify the number of iterations to use when deriving key from the password.",
	Kind:    cliconf.Defaulted,
	Default: 10240,
	Config:  func(d *Document) (uint32, bool) { return deref(d.account().KeysIterations) },
}

var flagLogFile = cliconf.Field[Document, string]{
	Key:    "log_file",
	Name:   "log-file",
	Help:   "Specify a filename into which logging should be appended.",
	Kind:   cliconf.OptionalPassthrough,
	Config: func(d *Document) (string, bool) { return deref(d.misc().LogFile) },
}

var flagLogging = cliconf.Field[Document, string]{
	Key:    "logging",
	Name:   "logging",
	Short:  "l",
	Help:   "Specify the logging level. Must conform to the same format as RUST_LOG.",
	Kind:   cliconf.OptionalPassthrough,
	Config: func(d *Document) (string, bool) { return deref(d.misc().Logging) },
}

var flagAuthor = cliconf.Field[Document, string]{
	Key:    "author",
	Name:   "author",
	Help:   "Specify the block author (aka \"coinbase\") address for sending block rewards from sealed blocks.",
	Kind:   cliconf.OptionalPassthrough,
	Config: func(d *Document) (string, bool) { return deref(d.mining().Author) },
}

// Usage-declared fields

var flagPortsShift = cliconf.Field[Document, uint16]{
	Key:    "ports_shift",
	Name:   "ports-shift",
	Usage:  "--ports-shift=[SHIFT] 'Add SHIFT to all port numbers ledgerd is listening on. Includes network port and all servers.'",
	Kind:   cliconf.UsageDefaulted,
	Config: func(d *Document) (uint16, bool) { return deref(d.misc().PortsShift) },
}

var flagUnlock = cliconf.Field[Document, []string]{
	Key:    "unlock",
	Name:   "unlock",
	Usage:  "--unlock=[ACCOUNTS] 'Unlock ACCOUNTS for the duration of the execution. ACCOUNTS is a comma-delimited list of addresses.'",
	Kind:   cliconf.UsageDefaulted,
	Config: func(d *Document) ([]string, bool) { return slice(d.account().Unlock) },
}

var flagPassword = cliconf.Field[Document, []string]{
	Key:    "password",
	Name:   "password",
	Usage:  "--password=[FILE]... 'Provide a file containing a password for unlocking an account. Leading and trailing whitespace is trimmed.'",
	Kind:   cliconf.UsageDefaulted,
	Config: func(d *Document) ([]string, bool) { return slice(d.account().Password) },
}

var flagCacheSize = cliconf.Field[Document, uint32]{
	Key:     "cache_size",
	Name:    "cache-size",
	Usage:   "--cache-size=[MB] 'Set total amount of discretionary memory to use for the entire system, overrides other cache and queue options.'",
	Kind:    cliconf.UsageDefaulted,
	Default: 128,
	Config:  func(d *Document) (uint32, bool) { return deref(d.footprint().CacheSize) },
}

var flagDBCompaction = cliconf.Field[Document, string]{
	Key:     "db_compaction",
	Name:    "db-compaction",
	Usage:   "--db-compaction=[TYPE] 'Database compaction type. TYPE may be one of: ssd, hdd, auto.'",
	Kind:    cliconf.UsageDefaulted,
	Default: "auto",
	Config:  func(d *Document) (string, bool) { return deref(d.footprint().DBCompaction) },
}

var flagNoWarp = cliconf.Field[Document, bool]{
	Key:    "no_warp",
	Name:   "no-warp",
	Usage:  "--no-warp 'Disable syncing from the snapshot over the network.'",
	Kind:   cliconf.UsageFlag,
	Config: func(d *Document) (bool, bool) { return inverse(d.network().Warp) },
}

var flagNoJSONRPC = cliconf.Field[Document, bool]{
	Key:    "no_jsonrpc",
	Name:   "no-jsonrpc",
	Usage:  "--no-jsonrpc 'Disable the HTTP JSON-RPC API server.'",
	Kind:   cliconf.UsageFlag,
	Config: func(d *Document) (bool, bool) { return deref(d.rpc().Disable) },
}

var flagNoIPC = cliconf.Field[Document, bool]{
	Key:    "no_ipc",
	Name:   "no-ipc",
	Usage:  "--no-ipc 'Disable JSON-RPC over IPC service.'",
	Kind:   cliconf.UsageFlag,
	Config: func(d *Document) (bool, bool) { return deref(d.ipc().Disable) },
}

var flagNoDiscovery = cliconf.Field[Document, bool]{
	Key:    "no_discovery",
	Name:   "no-discovery",
	Usage:  "--no-discovery 'Disable new peer discovery.'",
	Kind:   cliconf.UsageFlag,
	Config: func(d *Document) (bool, bool) { return inverse(d.network().Discovery) },
}

var flagPublicNode = cliconf.Field[Document, bool]{
	Key:    "public_node",
	Name:   "public-node",
	Usage:  "--public-node 'Start ledgerd as a public web server. Account storage and transaction signing will be delegated to the UI.'",
	Kind:   cliconf.UsageFlag,
	Config: func(d *Document) (bool, bool) { return deref(d.node().PublicNode) },
}

var flagNoColor = cliconf.Field[Document, bool]{
	Key:    "no_color",
	Name:   "no-color",
	Usage:  "--no-color 'Don't use terminal color codes in output.'",
	Kind:   cliconf.UsageFlag,
	Config: func(d *Document) (bool, bool) { return inverse(d.misc().Color) },
}

var flagNoPeriodicSnapshot = cliconf.Field[Document, bool]{
	Key:    "no_periodic_snapshot",
	Name:   "no-periodic-snapshot",
	Usage:  "--no-periodic-snapshot 'Disable automated snapshots which usually occur once every 5000 blocks.'",
	Kind:   cliconf.UsageFlag,
	Config: func(d *Document) (bool, bool) { return deref(d.snapshots().DisablePeriodic) },
}

// Scoped arguments

var argDaemonPIDFile = cliconf.Field[Document, string]{
	Key: "daemon_pid_file", Name: "pid-file", Kind: cliconf.ScopedArgument, Position: 1, Required: true,
}

var argAccountNewHint = cliconf.Field[Document, string]{
	Key: "account_new_hint", Name: "hint", Kind: cliconf.ScopedArgument,
	Help: "Store a password hint next to the new key file.",
}

var argAccountImportPath = cliconf.Field[Document, []string]{
	Key: "account_import_path", Name: "path", Kind: cliconf.ScopedArgument, Position: 1, Required: true, Variadic: true,
}

var argWalletImportPath = cliconf.Field[Document, string]{
	Key: "wallet_import_path", Name: "path", Kind: cliconf.ScopedArgument, Position: 1, Required: true,
}

var argImportFile = cliconf.Field[Document, string]{
	Key: "import_file", Name: "file", Kind: cliconf.ScopedArgument, Position: 1,
}

var argImportFormat = cliconf.Field[Document, string]{
	Key: "import_format", Name: "format", Kind: cliconf.ScopedArgument,
	Help: "Import in a given format. FORMAT must be one of 'hex' and 'binary'.",
}

var argExportBlocksFile = cliconf.Field[Document, string]{
	Key: "export_blocks_file", Name: "file", Kind: cliconf.ScopedArgument, Position: 1,
}

var argExportBlocksFormat = cliconf.Field[Document, string]{
	Key: "export_blocks_format", Name: "format", Kind: cliconf.ScopedArgument,
	Help: "Export in a given format. FORMAT must be one of 'hex' and 'binary'.",
}

var argExportBlocksFrom = cliconf.Field[Document, string]{
	Key: "export_blocks_from", Name: "from", Kind: cliconf.ScopedArgument,
	Help: "Export from block BLOCK, which may be an index or hash.",
}

var argExportBlocksTo = cliconf.Field[Document, string]{
	Key: "export_blocks_to", Name: "to", Kind: cliconf.ScopedArgument,
	Help: "Export to (including) block BLOCK, which may be an index, hash or 'latest'.",
}

var argExportStateFile = cliconf.Field[Document, string]{
	Key: "export_state_file", Name: "file", Kind: cliconf.ScopedArgument, Position: 1,
}

var argExportStateFormat = cliconf.Field[Document, string]{
	Key: "export_state_format", Name: "format", Kind: cliconf.ScopedArgument,
	Help: "Export in a given format. FORMAT must be one of 'hex' and 'binary'.",
}

var argExportStateAt = cliconf.Field[Document, string]{
	Key: "export_state_at", Name: "at", Kind: cliconf.ScopedArgument,
	Help: "Take a snapshot at the given block, which may be an index, hash, or 'latest'.",
}

var argSignerSignID = cliconf.Field[Document, uint64]{
	Key: "signer_sign_id", Name: "id", Kind: cliconf.ScopedArgument, Position: 1,
}

var argSignerRejectID = cliconf.Field[Document, uint64]{
	Key: "signer_reject_id", Name: "id", Kind: cliconf.ScopedArgument, Position: 1, Required: true,
}

var argSnapshotFile = cliconf.Field[Document, string]{
	Key: "snapshot_file", Name: "file", Kind: cliconf.ScopedArgument, Position: 1, Required: true,
}

var argRestoreFile = cliconf.Field[Document, string]{
	Key: "restore_file", Name: "file", Kind: cliconf.ScopedArgument, Position: 1,
}

var argToolsHashFile = cliconf.Field[Document, string]{
	Key: "tools_hash_file", Name: "file", Kind: cliconf.ScopedArgument, Position: 1, Required: true,
}

// Command tree

var (
	cmdDaemon = &cliconf.Command[Document]{
		Key: "daemon", Name: "daemon", About: "Use ledgerd as a daemon",
		Args: []cliconf.Decl[Document]{argDaemonPIDFile},
	}

	cmdAccountNew = &cliconf.Command[Document]{
		Key: "account_new", Name: "new", About: "Create a new account",
		Args: []cliconf.Decl[Document]{argAccountNewHint},
	}
	cmdAccountList   = &cliconf.Command[Document]{Key: "account_list", Name: "list", About: "List existing accounts"}
	cmdAccountImport = &cliconf.Command[Document]{
		Key: "account_import", Name: "import", About: "Import accounts from JSON UTC keystore files",
		Args: []cliconf.Decl[Document]{argAccountImportPath},
	}
	cmdAccount = &cliconf.Command[Document]{
		Key: "account", Name: "account", About: "Manage accounts",
		Commands: []*cliconf.Command[Document]{cmdAccountNew, cmdAccountList, cmdAccountImport},
	}

	cmdWalletImport = &cliconf.Command[Document]{
		Key: "wallet_import", Name: "import", About: "Import wallet from a presale file",
		Args: []cliconf.Decl[Document]{argWalletImportPath},
	}
	cmdWallet = &cliconf.Command[Document]{
		Key: "wallet", Name: "wallet", About: "Manage wallet",
		Commands: []*cliconf.Command[Document]{cmdWalletImport},
	}

	cmdImport = &cliconf.Command[Document]{
		Key: "import", Name: "import", About: "Import blockchain data from a file",
		Args: []cliconf.Decl[Document]{argImportFile, argImportFormat},
	}

	cmdExportBlocks = &cliconf.Command[Document]{
		Key: "export_blocks", Name: "blocks", About: "Export blocks to a file",
		Args: []cliconf.Decl[Document]{argExportBlocksFile, argExportBlocksFormat, argExportBlocksFrom, argExportBlocksTo},
	}
	cmdExportState = &cliconf.Command[Document]{
		Key: "export_state", Name: "state", About: "Export state to a file",
		Args: []cliconf.Decl[Document]{argExportStateFile, argExportStateFormat, argExportStateAt},
	}
	cmdExport = &cliconf.Command[Document]{
		Key: "export", Name: "export", About: "Export blockchain data",
		Commands: []*cliconf.Command[Document]{cmdExportBlocks, cmdExportState},
	}

	cmdSignerNewToken = &cliconf.Command[Document]{Key: "signer_new_token", Name: "new-token", About: "Generate a new signer authentication token"}
	cmdSignerList     = &cliconf.Command[Document]{Key: "signer_list", Name: "list", About: "List pending signing requests"}
	cmdSignerSign     = &cliconf.Command[Document]{
		Key: "signer_sign", Name: "sign", About: "Sign a pending request, or all of them when no ID is given",
		Args: []cliconf.Decl[Document]{argSignerSignID},
	}
	cmdSignerReject = &cliconf.Command[Document]{
		Key: "signer_reject", Name: "reject", About: "Reject a pending request",
		Args: []cliconf.Decl[Document]{argSignerRejectID},
	}
	cmdSigner = &cliconf.Command[Document]{
		Key: "signer", Name: "signer", About: "Manage the trusted signer",
		Commands: []*cliconf.Command[Document]{cmdSignerNewToken, cmdSignerList, cmdSignerSign, cmdSignerReject},
	}

	cmdSnapshot = &cliconf.Command[Document]{
		Key: "snapshot", Name: "snapshot", About: "Make a snapshot of the database",
		Args: []cliconf.Decl[Document]{argSnapshotFile},
	}
	cmdRestore = &cliconf.Command[Document]{
		Key: "restore", Name: "restore", About: "Restore the database from a snapshot",
		Args: []cliconf.Decl[Document]{argRestoreFile},
	}

	cmdToolsHash = &cliconf.Command[Document]{
		Key: "tools_hash", Name: "hash", About: "Hash a file",
		Args: []cliconf.Decl[Document]{argToolsHashFile},
	}
	cmdTools = &cliconf.Command[Document]{
		Key: "tools", Name: "tools", About: "Tools",
		Commands: []*cliconf.Command[Document]{cmdToolsHash},
	}

	cmdDBKill = &cliconf.Command[Document]{Key: "db_kill", Name: "kill", About: "Clean the database"}
	cmdDB     = &cliconf.Command[Document]{
		Key: "db", Name: "db", About: "Manage the database",
		Commands: []*cliconf.Command[Document]{cmdDBKill},
	}
)

// Schema is the complete ledgerd command line and config file surface
var Schema = cliconf.MustSchema(cliconf.Schema[Document]{
	Name:    ProgramName,
	About:   "Fast, light, robust ledger node",
	Version: VersionString,
	Fields: []cliconf.Decl[Document]{
		flagConfig, flagNoConfig, flagTestnet,
		flagMode, flagChain, flagBasePath, flagDBPath, flagKeysPath, flagIdentity,
		flagPort, flagMinPeers, flagMaxPeers, flagNAT, flagNetworkID,
		flagJSONRPCPort, flagJSONRPCInterface, flagJSONRPCAPIs, flagIPCPath,
		flagPruning, flagKeysIterations,
		flagLogFile, flagLogging, flagAuthor,
		flagPortsShift, flagUnlock, flagPassword, flagCacheSize, flagDBCompaction,
		flagNoWarp, flagNoJSONRPC, flagNoIPC, flagNoDiscovery, flagPublicNode, flagNoColor, flagNoPeriodicSnapshot,
	},
	Commands: []*cliconf.Command[Document]{
		cmdDaemon, cmdAccount, cmdWallet, cmdImport, cmdExport, cmdSigner,
		cmdSnapshot, cmdRestore, cmdTools, cmdDB,
	},
	ConfigPath: &flagConfig,
	NoConfig:   &flagNoConfig,
})
