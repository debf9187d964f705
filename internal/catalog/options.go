package catalog

// Display sections for the documented option set.
const (
	SectionCore      = "Core"
	SectionNetwork   = "Network"
	SectionRPC       = "RPC"
	SectionWallet    = "Wallet"
	SectionDebugging = "Debugging"
	SectionMining    = "Mining"
	SectionRelay     = "Relay"
	SectionZMQ       = "ZMQ"
)

// defaultSpecs is the documented bitcoind option set. Keys that bitcoind
// accepts multiple times are MultiStr; fee rates and paths stay Str since
// the editor never validates them.
var defaultSpecs = []OptionSpec{
	// Core: data directory and storage
	{Key: "datadir", Type: Str, Section: SectionCore, Help: "Specify data directory"},
	{Key: "blocksdir", Type: Str, Section: SectionCore, Help: "Specify blocks directory"},
	{Key: "pid", Type: Str, Section: SectionCore, Help: "Specify pid file", Default: "bitcoind.pid"},
	{Key: "debuglogfile", Type: Str, Section: SectionCore, Help: "Specify debug log file", Default: "debug.log"},
	{Key: "settings", Type: Str, Section: SectionCore, Help: "Specify settings file"},
	{Key: "includeconf", Type: MultiStr, Section: SectionCore, Help: "Include additional config file"},
	{Key: "loadblock", Type: MultiStr, Section: SectionCore, Help: "Import blocks from external file"},

	// Core: indexing
	{Key: "txindex", Type: Bool, Section: SectionCore, Help: "Maintain full transaction index", Default: "0"},
	{Key: "blockfilterindex", Type: Str, Section: SectionCore, Help: "Maintain compact block filter index"},
	{Key: "coinstatsindex", Type: Bool, Section: SectionCore, Help: "Maintain coinstats index", Default: "0"},

	// Core: storage and performance
	{Key: "prune", Type: Int, Section: SectionCore, Help: "Reduce storage by pruning old blocks", Default: "0"},
	{Key: "dbcache", Type: Int, Section: SectionCore, Help: "Database cache size in MiB", Default: "450"},
	{Key: "maxmempool", Type: Int, Section: SectionCore, Help: "Maximum mempool size in MiB", Default: "300"},
	{Key: "maxorphantx", Type: Int, Section: SectionCore, Help: "Maximum orphan transactions", Default: "100"},
	{Key: "mempoolexpiry", Type: Int, Section: SectionCore, Help: "Mempool expiry in hours", Default: "336"},
	{Key: "par", Type: Int, Section: SectionCore, Help: "Script verification threads", Default: "0"},
	{Key: "blockreconstructionextratxn", Type: Int, Section: SectionCore, Help: "Extra transactions for block reconstruction", Default: "100"},

	// Core: behavior
	{Key: "blocksonly", Type: Bool, Section: SectionCore, Help: "Reject transactions from network peers", Default: "0"},
	{Key: "persistmempool", Type: Bool, Section: SectionCore, Help: "Save mempool on shutdown", Default: "1"},
	{Key: "reindex", Type: Bool, Section: SectionCore, Help: "Rebuild chain state and block index", Default: "0"},
	{Key: "reindex-chainstate", Type: Bool, Section: SectionCore, Help: "Rebuild chain state from blocks", Default: "0"},
	{Key: "sysperms", Type: Bool, Section: SectionCore, Help: "Create files with system default permissions", Default: "0"},
	{Key: "daemon", Type: Bool, Section: SectionCore, Help: "Run in background as daemon", Default: "0"},
	{Key: "daemonwait", Type: Bool, Section: SectionCore, Help: "Wait for initialization before backgrounding", Default: "0"},

	// Core: notifications and validation
	{Key: "alertnotify", Type: Str, Section: SectionCore, Help: "Command to execute on alert"},
	{Key: "blocknotify", Type: Str, Section: SectionCore, Help: "Command to execute on new block"},
	{Key: "startupnotify", Type: Str, Section: SectionCore, Help: "Command to execute on startup"},
	{Key: "assumevalid", Type: Str, Section: SectionCore, Help: "Assume blocks are valid up to this hash"},

	// Network: chain selection
	{Key: "chain", Type: Str, Section: SectionNetwork, Help: "Chain to use (main, test, signet, regtest)", Default: "main"},
	{Key: "testnet", Type: Bool, Section: SectionNetwork, Help: "Use testnet", Default: "0"},
	{Key: "regtest", Type: Bool, Section: SectionNetwork, Help: "Use regtest", Default: "0"},
	{Key: "signet", Type: Bool, Section: SectionNetwork, Help: "Use signet", Default: "0"},
	{Key: "signetchallenge", Type: Str, Section: SectionNetwork, Help: "Signet challenge script"},
	{Key: "signetseednode", Type: MultiStr, Section: SectionNetwork, Help: "Signet seed node"},

	// Network: listening and binding
	{Key: "listen", Type: Bool, Section: SectionNetwork, Help: "Accept incoming connections", Default: "1"},
	{Key: "bind", Type: MultiStr, Section: SectionNetwork, Help: "Bind to address"},
	{Key: "whitebind", Type: MultiStr, Section: SectionNetwork, Help: "Bind with whitelist permissions"},
	{Key: "port", Type: Int, Section: SectionNetwork, Help: "Listen on port", Default: "8333"},

	// Network: connection limits
	{Key: "maxconnections", Type: Int, Section: SectionNetwork, Help: "Maximum peer connections", Default: "125"},
	{Key: "maxreceivebuffer", Type: Int, Section: SectionNetwork, Help: "Maximum receive buffer per connection", Default: "5000"},
	{Key: "maxsendbuffer", Type: Int, Section: SectionNetwork, Help: "Maximum send buffer per connection", Default: "1000"},
	{Key: "maxuploadtarget", Type: Int, Section: SectionNetwork, Help: "Maximum upload target in MiB per day", Default: "0"},
	{Key: "timeout", Type: Int, Section: SectionNetwork, Help: "Connection timeout in milliseconds", Default: "5000"},
	{Key: "maxtimeadjustment", Type: Int, Section: SectionNetwork, Help: "Maximum time adjustment in seconds", Default: "4200"},
	{Key: "bantime", Type: Int, Section: SectionNetwork, Help: "Ban duration in seconds", Default: "86400"},

	// Network: peer discovery
	{Key: "discover", Type: Bool, Section: SectionNetwork, Help: "Discover own IP address", Default: "1"},
	{Key: "dns", Type: Bool, Section: SectionNetwork, Help: "Allow DNS lookups", Default: "1"},
	{Key: "dnsseed", Type: Bool, Section: SectionNetwork, Help: "Query DNS seeds", Default: "1"},
	{Key: "fixedseeds", Type: Bool, Section: SectionNetwork, Help: "Use fixed seeds if DNS fails", Default: "1"},
	{Key: "forcednsseed", Type: Bool, Section: SectionNetwork, Help: "Always query DNS seeds", Default: "0"},
	{Key: "seednode", Type: MultiStr, Section: SectionNetwork, Help: "Connect to seed node for addresses"},
	{Key: "addnode", Type: MultiStr, Section: SectionNetwork, Help: "Add node to connect to"},
	{Key: "connect", Type: MultiStr, Section: SectionNetwork, Help: "Connect only to specified node"},
	{Key: "onlynet", Type: MultiStr, Section: SectionNetwork, Help: "Only connect to network type"},
	{Key: "networkactive", Type: Bool, Section: SectionNetwork, Help: "Enable network activity", Default: "1"},

	// Network: proxies and overlay transports
	{Key: "proxy", Type: Str, Section: SectionNetwork, Help: "SOCKS5 proxy"},
	{Key: "proxyrandomize", Type: Bool, Section: SectionNetwork, Help: "Randomize proxy credentials", Default: "1"},
	{Key: "onion", Type: Str, Section: SectionNetwork, Help: "SOCKS5 proxy for Tor"},
	{Key: "listenonion", Type: Bool, Section: SectionNetwork, Help: "Create Tor onion service", Default: "1"},
	{Key: "torcontrol", Type: Str, Section: SectionNetwork, Help: "Tor control port", Default: "127.0.0.1:9051"},
	{Key: "torpassword", Type: Str, Section: SectionNetwork, Help: "Tor control password"},
	{Key: "i2psam", Type: Str, Section: SectionNetwork, Help: "I2P SAM proxy"},
	{Key: "i2pacceptincoming", Type: Bool, Section: SectionNetwork, Help: "Accept incoming I2P connections", Default: "1"},
	{Key: "cjdnsreachable", Type: Bool, Section: SectionNetwork, Help: "CJDNS reachable", Default: "0"},

	// Network: peer permissions and misc
	{Key: "whitelist", Type: MultiStr, Section: SectionNetwork, Help: "Whitelist peers"},
	{Key: "peerblockfilters", Type: Bool, Section: SectionNetwork, Help: "Serve compact block filters", Default: "0"},
	{Key: "peerbloomfilters", Type: Bool, Section: SectionNetwork, Help: "Support bloom filters", Default: "0"},
	{Key: "permitbaremultisig", Type: Bool, Section: SectionNetwork, Help: "Relay bare multisig", Default: "1"},
	{Key: "externalip", Type: MultiStr, Section: SectionNetwork, Help: "Specify external IP"},
	{Key: "upnp", Type: Bool, Section: SectionNetwork, Help: "Use UPnP for port mapping", Default: "0"},
	{Key: "asmap", Type: Str, Section: SectionNetwork, Help: "ASN mapping file"},

	// RPC
	{Key: "server", Type: Bool, Section: SectionRPC, Help: "Accept RPC commands", Default: "0"},
	{Key: "rpcuser", Type: Str, Section: SectionRPC, Help: "RPC username"},
	{Key: "rpcpassword", Type: Str, Section: SectionRPC, Help: "RPC password"},
	{Key: "rpcauth", Type: MultiStr, Section: SectionRPC, Help: "RPC auth credentials"},
	{Key: "rpccookiefile", Type: Str, Section: SectionRPC, Help: "RPC cookie file location"},
	{Key: "rpcport", Type: Int, Section: SectionRPC, Help: "RPC port", Default: "8332"},
	{Key: "rpcbind", Type: MultiStr, Section: SectionRPC, Help: "RPC bind address"},
	{Key: "rpcallowip", Type: MultiStr, Section: SectionRPC, Help: "Allow RPC from IP"},
	{Key: "rpcthreads", Type: Int, Section: SectionRPC, Help: "RPC worker threads", Default: "4"},
	{Key: "rpcserialversion", Type: Int, Section: SectionRPC, Help: "RPC serialization version", Default: "1"},
	{Key: "rpcwhitelist", Type: MultiStr, Section: SectionRPC, Help: "RPC method whitelist"},
	{Key: "rpcwhitelistdefault", Type: Bool, Section: SectionRPC, Help: "Default RPC whitelist behavior", Default: "1"},
	{Key: "rest", Type: Bool, Section: SectionRPC, Help: "Enable REST interface", Default: "0"},

	// Wallet
	{Key: "disablewallet", Type: Bool, Section: SectionWallet, Help: "Disable wallet", Default: "0"},
	{Key: "wallet", Type: MultiStr, Section: SectionWallet, Help: "Wallet to load"},
	{Key: "walletdir", Type: Str, Section: SectionWallet, Help: "Wallet directory"},
	{Key: "addresstype", Type: Str, Section: SectionWallet, Help: "Default address type", Default: "bech32"},
	{Key: "changetype", Type: Str, Section: SectionWallet, Help: "Change address type"},
	{Key: "fallbackfee", Type: Str, Section: SectionWallet, Help: "Fallback fee rate", Default: "0.00"},
	{Key: "discardfee", Type: Str, Section: SectionWallet, Help: "Discard fee threshold", Default: "0.0001"},
	{Key: "mintxfee", Type: Str, Section: SectionWallet, Help: "Minimum transaction fee", Default: "0.00001"},
	{Key: "paytxfee", Type: Str, Section: SectionWallet, Help: "Transaction fee rate", Default: "0.00"},
	{Key: "consolidatefeerate", Type: Str, Section: SectionWallet, Help: "Consolidation fee rate", Default: "0.0001"},
	{Key: "maxapsfee", Type: Str, Section: SectionWallet, Help: "Max fee for partial spend avoidance", Default: "0.00"},
	{Key: "txconfirmtarget", Type: Int, Section: SectionWallet, Help: "Confirmation target blocks", Default: "6"},
	{Key: "spendzeroconfchange", Type: Bool, Section: SectionWallet, Help: "Spend unconfirmed change", Default: "1"},
	{Key: "walletrbf", Type: Bool, Section: SectionWallet, Help: "Enable wallet RBF", Default: "0"},
	{Key: "avoidpartialspends", Type: Bool, Section: SectionWallet, Help: "Avoid partial spends", Default: "0"},
	{Key: "keypool", Type: Int, Section: SectionWallet, Help: "Keypool size", Default: "1000"},
	{Key: "signer", Type: Str, Section: SectionWallet, Help: "External signer command"},
	{Key: "walletbroadcast", Type: Bool, Section: SectionWallet, Help: "Broadcast wallet transactions", Default: "1"},
	{Key: "walletnotify", Type: Str, Section: SectionWallet, Help: "Command on wallet transaction"},

	// Debugging
	{Key: "debug", Type: MultiStr, Section: SectionDebugging, Help: "Debug categories"},
	{Key: "debugexclude", Type: MultiStr, Section: SectionDebugging, Help: "Exclude debug categories"},
	{Key: "logips", Type: Bool, Section: SectionDebugging, Help: "Log IP addresses", Default: "0"},
	{Key: "logsourcelocations", Type: Bool, Section: SectionDebugging, Help: "Log source locations", Default: "0"},
	{Key: "logthreadnames", Type: Bool, Section: SectionDebugging, Help: "Log thread names", Default: "0"},
	{Key: "logtimestamps", Type: Bool, Section: SectionDebugging, Help: "Log timestamps", Default: "1"},
	{Key: "shrinkdebugfile", Type: Bool, Section: SectionDebugging, Help: "Shrink debug.log on startup", Default: "1"},
	{Key: "printtoconsole", Type: Bool, Section: SectionDebugging, Help: "Print to console", Default: "0"},
	{Key: "uacomment", Type: MultiStr, Section: SectionDebugging, Help: "User agent comment"},
	{Key: "maxtxfee", Type: Str, Section: SectionDebugging, Help: "Maximum transaction fee", Default: "0.10"},

	// Mining
	{Key: "blockmaxweight", Type: Int, Section: SectionMining, Help: "Maximum block weight", Default: "3996000"},
	{Key: "blockmintxfee", Type: Str, Section: SectionMining, Help: "Minimum block transaction fee", Default: "0.00001"},

	// Relay
	{Key: "minrelaytxfee", Type: Str, Section: SectionRelay, Help: "Minimum relay fee", Default: "0.00001"},
	{Key: "datacarrier", Type: Bool, Section: SectionRelay, Help: "Relay OP_RETURN transactions", Default: "1"},
	{Key: "datacarriersize", Type: Int, Section: SectionRelay, Help: "Maximum OP_RETURN size", Default: "83"},
	{Key: "bytespersigop", Type: Int, Section: SectionRelay, Help: "Bytes per sigop", Default: "20"},
	{Key: "whitelistforcerelay", Type: Bool, Section: SectionRelay, Help: "Force relay from whitelist", Default: "0"},
	{Key: "whitelistrelay", Type: Bool, Section: SectionRelay, Help: "Relay from whitelist", Default: "1"},

	// ZMQ
	{Key: "zmqpubhashblock", Type: Str, Section: SectionZMQ, Help: "ZMQ hash block publisher"},
	{Key: "zmqpubhashtx", Type: Str, Section: SectionZMQ, Help: "ZMQ hash tx publisher"},
	{Key: "zmqpubrawblock", Type: Str, Section: SectionZMQ, Help: "ZMQ raw block publisher"},
	{Key: "zmqpubrawtx", Type: Str, Section: SectionZMQ, Help: "ZMQ raw tx publisher"},
	{Key: "zmqpubsequence", Type: Str, Section: SectionZMQ, Help: "ZMQ sequence publisher"},
}
