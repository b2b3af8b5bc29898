// FILE: lixenwraith/cliconf/cli/document.go
package cli

// Document is the ledgerd config file. Every leaf is a pointer so an absent key
// stays distinguishable from a zero value.
type Document struct {
	Node      *Node      `toml:"node"`
	Account   *Account   `toml:"account"`
	Network   *Network   `toml:"network"`
	RPC       *RPC       `toml:"rpc"`
	IPC       *IPC       `toml:"ipc"`
	Footprint *Footprint `toml:"footprint"`
	Snapshots *Snapshots `toml:"snapshots"`
	Mining    *Mining    `toml:"mining"`
	Misc      *Misc      `toml:"misc"`
}

// Node holds node identity and filesystem locations
type Node struct {
	Mode       *string `toml:"mode"`
	Chain      *string `toml:"chain"`
	BasePath   *string `toml:"base_path"`
	DBPath     *string `toml:"db_path"`
	KeysPath   *string `toml:"keys_path"`
	Identity   *string `toml:"identity"`
	PublicNode *bool   `toml:"public_node"`
}

type Account struct {
	Unlock         []string `toml:"unlock"`
	Password       []string `toml:"password"`
	KeysIterations *uint32  `toml:"keys_iterations"`
}

type Network struct {
	Port      *uint16 `toml:"port"`
	MinPeers  *uint16 `toml:"min_peers"`
	MaxPeers  *uint16 `toml:"max_peers"`
	NAT       *string `toml:"nat"`
	ID        *uint64 `toml:"id"`
	Warp      *bool   `toml:"warp"`
	Discovery *bool   `toml:"discovery"`
}

type RPC struct {
	Disable   *bool    `toml:"disable"`
	Port      *uint16  `toml:"port"`
	Interface *string  `toml:"interface"`
	APIs      []string `toml:"apis"`
}

type IPC struct {
	Disable *bool   `toml:"disable"`
	Path    *string `toml:"path"`
}

type Footprint struct {
	Pruning      *string `toml:"pruning"`
	CacheSize    *uint32 `toml:"cache_size"`
	DBCompaction *string `toml:"db_compaction"`
}

type Snapshots struct {
	DisablePeriodic *bool `toml:"disable_periodic"`
}

type Mining struct {
	Author *string `toml:"author"`
}

type Misc struct {
	Logging    *string `toml:"logging"`
	LogFile    *string `toml:"log_file"`
	Color      *bool   `toml:"color"`
	PortsShift *uint16 `toml:"ports_shift"`
}

// section accessors tolerate absent tables

func (d *Document) node() *Node {
	if d == nil || d.Node == nil {
		return &Node{}
	}
	return d.Node
}

func (d *Document) account() *Account {
	if d == nil || d.Account == nil {
		return &Account{}
	}
	return d.Account
}

func (d *Document) network() *Network {
	if d == nil || d.Network == nil {
		return &Network{}
	}
	return d.Network
}

func (d *Document) rpc() *RPC {
	if d == nil || d.RPC == nil {
		return &RPC{}
	}
	return d.RPC
}

func (d *Document) ipc() *IPC {
	if d == nil || d.IPC == nil {
		return &IPC{}
	}
	return d.IPC
}

func (d *Document) footprint() *Footprint {
	if d == nil || d.Footprint == nil {
		return &Footprint{}
	}
	return d.Footprint
}

func (d *Document) snapshots() *Snapshots {
	if d == nil || d.Snapshots == nil {
		return &Snapshots{}
	}
	return d.Snapshots
}

func (d *Document) mining() *Mining {
	if d == nil || d.Mining == nil {
		return &Mining{}
	}
	return d.Mining
}

func (d *Document) misc() *Misc {
	if d == nil || d.Misc == nil {
		return &Misc{}
	}
	return d.Misc
}

// deref adapts a pointer leaf to a config accessor result
func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// inverse adapts a positive config switch to a negative flag: warp = false asserts no_warp
func inverse(p *bool) (bool, bool) {
	if p == nil {
		return false, false
	}
	return !*p, true
}

// slice adapts a list leaf; an absent key is distinct from an empty list
func slice(s []string) ([]string, bool) {
	return s, s != nil
}
