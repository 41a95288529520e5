// Package contentgen turns a text prompt into the first textual completion of a hosted
// generative model. The root package holds the canonical response model, the error
// taxonomy and Generator; provider clients live in adapter subpackages.
package contentgen
