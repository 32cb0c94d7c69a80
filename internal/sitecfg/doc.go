// Package sitecfg implements reading, merging, and rewriting of the JSON
// configuration documents in a bench sites tree (site_config.json per site,
// common_site_config.json at the root), along with the directory layout they
// live in.
//
// Documents are full-rewrite: a file is read at process start, mutated in
// memory, and overwritten whole. No locking is performed; the tools assume a
// single writer per invocation.
package sitecfg
