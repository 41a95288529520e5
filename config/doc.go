// Package config reads contentgen.Config from YAML documents, the process environment and
// dotenv files. Loading happens once at startup; the resulting Config is passed explicitly
// to the generator. A missing API key is not an error here: it surfaces on the first call.
package config
