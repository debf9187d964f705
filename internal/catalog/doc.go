// Package catalog holds the static table of known bitcoin.conf options.
//
// The catalog is compiled in, immutable, and built once at startup. It knows
// each option's name, value type, display section, help text, and default,
// but deliberately knows nothing about any particular configuration file:
// binding raw file entries to these specs is the conf package's job.
//
// Keys bitcoind accepts multiple times (addnode=, connect=, rpcbind=, ...)
// are typed MultiStr so the config model can collect every occurrence
// instead of silently keeping the last one.
//
// The catalog never validates values. Whether prune=abc makes sense is
// between the operator and bitcoind; this tool only promises faithful
// round-tripping and typed access where the text allows it.
package catalog
