package redis

import "fmt"

// Key prefix for all SDK data
const keyPrefix = "berapi"

// identityKey returns the Redis key for a party's identity
func identityKey(party string) string {
	return fmt.Sprintf("%s:identity:%s", keyPrefix, party)
}
