package config

const configVersionV0 = "0"

// configV0 is the unversioned layout written before providers and
// password defaults existed. It only carries the version marker.
type configV0 struct {
	Version string `json:"version"` // required by vconfig-go
}

// migrateV0 upgrades a v0 document to v1. Nothing besides the version is
// carried over, so the result is the v1 default.
func (c *configV0) migrateV0() *configV1 {
	return newConfigV1()
}
