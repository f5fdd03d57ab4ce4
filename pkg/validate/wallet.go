package validate

// IsWalletAddress does a shape check on a destination wallet address:
// printable ASCII without spaces, within the length range crypto addresses
// occupy. Real validity is only known to the payment network.
func IsWalletAddress(address string) bool {
	if len(address) < 20 || len(address) > 128 {
		return false
	}
	for _, r := range address {
		if r <= ' ' || r > '~' {
			return false
		}
	}
	return true
}
