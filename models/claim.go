package models

// Store keys for the claim registry. One record per claimed item plus a
// denormalized index of claimed ids, so listing never scans the key space.
const (
	ClaimKeyPrefix = "item-claim:"
	ClaimIndexKey  = "items-claimed"
)

// Claim asserts that a specific person has taken a specific claimable
// item (a gift or a castle room). Claims are write-once: they are never
// released or reassigned.
type Claim struct {
	ItemID    string `json:"itemId" dynamodbav:"itemId"`
	ClaimedBy string `json:"claimedBy" dynamodbav:"claimedBy"`
	ClaimedAt string `json:"claimedAt" dynamodbav:"claimedAt"` // RFC3339, set server-side
}

// ClaimKey returns the store key for an item's claim record
func ClaimKey(itemID string) string {
	return ClaimKeyPrefix + itemID
}
