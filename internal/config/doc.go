// Package config centralizes application configuration and the domain
// constants the parsing pipeline depends on: the exact column header
// labels of the candidate sheet, the ordered date-format list, and the
// SLA ceilings.
//
// Configuration is loaded from environment variables (RECRUITLENS_*
// prefix) layered over an optional config.yaml, with defaults in struct
// tags. Environment always wins.
package config
