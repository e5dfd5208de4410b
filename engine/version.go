package engine

import (
	"github.com/Masterminds/semver"
)

// contractVersion is this engine's implementation version, persisted
// under the contract_version key separately from the pool's value
// payloads, which carry no embedded schema version of their own.
const contractVersion = "3.0.0"

const keyContractVersion = "contract_version"

// ContractVersion returns the engine's implementation version.
func (e *Engine) ContractVersion() string { return contractVersion }

// SupportsContractVersion reports whether the engine's version satisfies
// a semver constraint, e.g. ">= 3.0.0".
func (e *Engine) SupportsContractVersion(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}
	v, err := semver.NewVersion(contractVersion)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
