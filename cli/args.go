// FILE: lixenwraith/cliconf/cli/args.go
package cli

import (
	"github.com/lixenwraith/cliconf"
)

// Args is the resolved ledgerd configuration consumed by the rest of the program
type Args struct {
	// Commands and their scoped arguments
	CmdDaemon     bool   `toml:"cmd_daemon"`
	DaemonPIDFile string `toml:"daemon_pid_file"`

	CmdAccount        bool     `toml:"cmd_account"`
	CmdAccountNew     bool     `toml:"cmd_account_new"`
	AccountNewHint    string   `toml:"account_new_hint"`
	CmdAccountList    bool     `toml:"cmd_account_list"`
	CmdAccountImport  bool     `toml:"cmd_account_import"`
	AccountImportPath []string `toml:"account_import_path"`

	CmdWallet        bool   `toml:"cmd_wallet"`
	CmdWalletImport  bool   `toml:"cmd_wallet_import"`
	WalletImportPath string `toml:"wallet_import_path"`

	CmdImport    bool   `toml:"cmd_import"`
	ImportFile   string `toml:"import_file"`
	ImportFormat string `toml:"import_format"`

	CmdExport          bool   `toml:"cmd_export"`
	CmdExportBlocks    bool   `toml:"cmd_export_blocks"`
	ExportBlocksFile   string `toml:"export_blocks_file"`
	ExportBlocksFormat string `toml:"export_blocks_format"`
	ExportBlocksFrom   string `toml:"export_blocks_from"`
	ExportBlocksTo     string `toml:"export_blocks_to"`
	CmdExportState     bool   `toml:"cmd_export_state"`
	ExportStateFile    string `toml:"export_state_file"`
	ExportStateFormat  string `toml:"export_state_format"`
	ExportStateAt      string `toml:"export_state_at"`

	CmdSigner         bool   `toml:"cmd_signer"`
	CmdSignerNewToken bool   `toml:"cmd_signer_new_token"`
	CmdSignerList     bool   `toml:"cmd_signer_list"`
	CmdSignerSign     bool   `toml:"cmd_signer_sign"`
	SignerSignID      uint64 `toml:"signer_sign_id"`
	CmdSignerReject   bool   `toml:"cmd_signer_reject"`
	SignerRejectID    uint64 `toml:"signer_reject_id"`

	CmdSnapshot  bool   `toml:"cmd_snapshot"`
	SnapshotFile string `toml:"snapshot_file"`
	CmdRestore   bool   `toml:"cmd_restore"`
	RestoreFile  string `toml:"restore_file"`

	CmdTools      bool   `toml:"cmd_tools"`
	CmdToolsHash  bool   `toml:"cmd_tools_hash"`
	ToolsHashFile string `toml:"tools_hash_file"`

	CmdDB     bool `toml:"cmd_db"`
	CmdDBKill bool `toml:"cmd_db_kill"`

	// Global options
	Config           string   `toml:"config"`
	NoConfig         bool     `toml:"no_config"`
	Testnet          bool     `toml:"testnet"`
	Mode             string   `toml:"mode"`
	Chain            string   `toml:"chain"`
	BasePath         *string  `toml:"base_path"`
	DBPath           *string  `toml:"db_path"`
	KeysPath         string   `toml:"keys_path"`
	Identity         string   `toml:"identity"`
	Port             uint16   `toml:"port"`
	MinPeers         uint16   `toml:"min_peers"`
	MaxPeers         uint16   `toml:"max_peers"`
	NAT              string   `toml:"nat"`
	NetworkID        *uint64  `toml:"network_id"`
	JSONRPCPort      uint16   `toml:"jsonrpc_port"`
	JSONRPCInterface string   `toml:"jsonrpc_interface"`
	JSONRPCAPIs      []string `toml:"jsonrpc_apis"`
	IPCPath          string   `toml:"ipc_path"`
	Pruning          string   `toml:"pruning"`
	KeysIterations   uint32   `toml:"keys_iterations"`
	LogFile          *string  `toml:"log_file"`
	Logging          *string  `toml:"logging"`
	Author           *string  `toml:"author"`

	PortsShift   uint16   `toml:"ports_shift"`
	Unlock       []string `toml:"unlock"`
	Password     []string `toml:"password"`
	CacheSize    uint32   `toml:"cache_size"`
	DBCompaction string   `toml:"db_compaction"`

	NoWarp             bool `toml:"no_warp"`
	NoJSONRPC          bool `toml:"no_jsonrpc"`
	NoIPC              bool `toml:"no_ipc"`
	NoDiscovery        bool `toml:"no_discovery"`
	PublicNode         bool `toml:"public_node"`
	NoColor            bool `toml:"no_color"`
	NoPeriodicSnapshot bool `toml:"no_periodic_snapshot"`
}

// FromValues copies resolved values into Args
func FromValues(v cliconf.Values) Args {
	return Args{
		CmdDaemon:     v.Active(cmdDaemon.Key),
		DaemonPIDFile: cliconf.Get(v, argDaemonPIDFile),

		CmdAccount:        v.Active(cmdAccount.Key),
		CmdAccountNew:     v.Active(cmdAccountNew.Key),
		AccountNewHint:    cliconf.Get(v, argAccountNewHint),
		CmdAccountList:    v.Active(cmdAccountList.Key),
		CmdAccountImport:  v.Active(cmdAccountImport.Key),
		AccountImportPath: cliconf.Get(v, argAccountImportPath),

		CmdWallet:        v.Active(cmdWallet.Key),
		CmdWalletImport:  v.Active(cmdWalletImport.Key),
		WalletImportPath: cliconf.Get(v, argWalletImportPath),

		CmdImport:    v.Active(cmdImport.Key),
		ImportFile:   cliconf.Get(v, argImportFile),
		ImportFormat: cliconf.Get(v, argImportFormat),

		CmdExport:          v.Active(cmdExport.Key),
		CmdExportBlocks:    v.Active(cmdExportBlocks.Key),
		ExportBlocksFile:   cliconf.Get(v, argExportBlocksFile),
		ExportBlocksFormat: cliconf.Get(v, argExportBlocksFormat),
		ExportBlocksFrom:   cliconf.Get(v, argExportBlocksFrom),
		ExportBlocksTo:     cliconf.Get(v, argExportBlocksTo),
		CmdExportState:     v.Active(cmdExportState.Key),
		ExportStateFile:    cliconf.Get(v, argExportStateFile),
		ExportStateFormat:  cliconf.Get(v, argExportStateFormat),
		ExportStateAt:      cliconf.Get(v, argExportStateAt),

		CmdSigner:         v.Active(cmdSigner.Key),
		CmdSignerNewToken: v.Active(cmdSignerNewToken.Key),
		CmdSignerList:     v.Active(cmdSignerList.Key),
		CmdSignerSign:     v.Active(cmdSignerSign.Key),
		SignerSignID:      cliconf.Get(v, argSignerSignID),
		CmdSignerReject:   v.Active(cmdSignerReject.Key),
		SignerRejectID:    cliconf.Get(v, argSignerRejectID),

		CmdSnapshot:  v.Active(cmdSnapshot.Key),
		SnapshotFile: cliconf.Get(v, argSnapshotFile),
		CmdRestore:   v.Active(cmdRestore.Key),
		RestoreFile:  cliconf.Get(v, argRestoreFile),

		CmdTools:      v.Active(cmdTools.Key),
		CmdToolsHash:  v.Active(cmdToolsHash.Key),
		ToolsHashFile: cliconf.Get(v, argToolsHashFile),

		CmdDB:     v.Active(cmdDB.Key),
		CmdDBKill: v.Active(cmdDBKill.Key),

		Config:           cliconf.Get(v, flagConfig),
		NoConfig:         cliconf.Get(v, flagNoConfig),
		Testnet:          cliconf.Get(v, flagTestnet),
		Mode:             cliconf.Get(v, flagMode),
		Chain:            cliconf.Get(v, flagChain),
		BasePath:         cliconf.GetOptional(v, flagBasePath),
		DBPath:           cliconf.GetOptional(v, flagDBPath),
		KeysPath:         cliconf.Get(v, flagKeysPath),
		Identity:         cliconf.Get(v, flagIdentity),
		Port:             cliconf.Get(v, flagPort),
		MinPeers:         cliconf.Get(v, flagMinPeers),
		MaxPeers:         cliconf.Get(v, flagMaxPeers),
		NAT:              cliconf.Get(v, flagNAT),
		NetworkID:        cliconf.GetOptional(v, flagNetworkID),
		JSONRPCPort:      cliconf.Get(v, flagJSONRPCPort),
		JSONRPCInterface: cliconf.Get(v, flagJSONRPCInterface),
		JSONRPCAPIs:      cliconf.Get(v, flagJSONRPCAPIs),
		IPCPath:          cliconf.Get(v, flagIPCPath),
		Pruning:          cliconf.Get(v, flagPruning),
		KeysIterations:   cliconf.Get(v, flagKeysIterations),
		LogFile:          cliconf.GetOptional(v, flagLogFile),
		Logging:          cliconf.GetOptional(v, flagLogging),
		Author:           cliconf.GetOptional(v, flagAuthor),

		PortsShift:   cliconf.Get(v, flagPortsShift),
		Unlock:       cliconf.Get(v, flagUnlock),
		Password:     cliconf.Get(v, flagPassword),
		CacheSize:    cliconf.Get(v, flagCacheSize),
		DBCompaction: cliconf.Get(v, flagDBCompaction),

		NoWarp:             cliconf.Get(v, flagNoWarp),
		NoJSONRPC:          cliconf.Get(v, flagNoJSONRPC),
		NoIPC:              cliconf.Get(v, flagNoIPC),
		NoDiscovery:        cliconf.Get(v, flagNoDiscovery),
		PublicNode:         cliconf.Get(v, flagPublicNode),
		NoColor:            cliconf.Get(v, flagNoColor),
		NoPeriodicSnapshot: cliconf.Get(v, flagNoPeriodicSnapshot),
	}
}
