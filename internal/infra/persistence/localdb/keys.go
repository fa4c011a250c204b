// Package localdb implements the domain repositories on top of the local
// key-value store, mirroring the persisted layout of the original client:
// one aggregate entry for the account directory, one for the active session,
// and one profile document per account.
package localdb

const (
	accountsKey      = "fitbuilder-users"
	sessionKey       = "fitbuilder-currentUser"
	profileKeyPrefix = "fitbuilder-userdata-"
)

func profileKey(accountID string) string {
	return profileKeyPrefix + accountID
}
