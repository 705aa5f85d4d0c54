package utils

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractStringSet extracts the members of a string-set attribute,
// returning an empty slice when the attribute is missing or not a set
func ExtractStringSet(item map[string]types.AttributeValue, field string) []string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberSS); ok {
			return v.Value
		}
	}
	return []string{}
}
