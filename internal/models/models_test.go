package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnums_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSeller.Valid())
	assert.False(t, Role("superuser").Valid())

	assert.True(t, UserActive.Valid())
	assert.False(t, UserStatus("frozen").Valid())

	assert.True(t, TransactionSale.Valid())
	assert.False(t, TransactionType("swap").Valid())

	assert.True(t, PropertyArchived.Valid())
	assert.False(t, PropertyStatus("deleted").Valid())

	assert.True(t, PaymentPaid.Valid())
	assert.False(t, PaymentStatus("refunded").Valid())
}

func TestPaymentStats_Empty(t *testing.T) {
	assert.True(t, PaymentStats{}.Empty())
	assert.True(t, PaymentStats{TotalAmount: 100}.Empty())

	s := PaymentStats{TopCategories: []CategoryStat{{Category: "apartment", Amount: 10, Percent: 100}}}
	assert.False(t, s.Empty())
}
