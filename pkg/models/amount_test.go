package models

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountFromString(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		a, err := AmountFromString("1500.50")
		require.NoError(t, err)
		assert.Equal(t, "1500.5", a.String())
		assert.True(t, a.Positive())
	})

	t.Run("Exact Decimal Arithmetic", func(t *testing.T) {
		a, _ := AmountFromString("0.1")
		b, _ := AmountFromString("0.2")
		assert.Equal(t, "0.3", a.Add(b).String())
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := AmountFromString("12,5")
		assert.Error(t, err)
	})

	t.Run("Zero And Negative Are Not Positive", func(t *testing.T) {
		zero, _ := AmountFromString("0")
		negative, _ := AmountFromString("-3")
		assert.False(t, zero.Positive())
		assert.False(t, negative.Positive())
	})
}

func TestAmountDynamoDBCodec(t *testing.T) {
	a, _ := AmountFromString("250.75")

	av, err := a.MarshalDynamoDBAttributeValue()
	require.NoError(t, err)
	n, ok := av.(*types.AttributeValueMemberN)
	require.True(t, ok, "amounts must be stored as number attributes")
	assert.Equal(t, "250.75", n.Value)

	var decoded Amount
	require.NoError(t, decoded.UnmarshalDynamoDBAttributeValue(av))
	assert.True(t, a.Equal(decoded.Decimal))

	err = decoded.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberS{Value: "250.75"})
	assert.Error(t, err)
}
