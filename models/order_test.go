package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		assert.True(t, ValidOrderStatus(status), status)
	}
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("archived"))
	assert.False(t, ValidOrderStatus("Pending"), "status values are case-sensitive")
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentMethodDelivery))
	assert.True(t, ValidPaymentMethod(PaymentMethodTransfer))
	assert.False(t, ValidPaymentMethod("cash"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestValidateInputReadsBindingTags(t *testing.T) {
	valid := OrderInput{
		CustomerName:    "Joana Domingos",
		CustomerEmail:   "joana@example.com",
		Items:           []OrderItem{{ProductID: 1, Name: "AirSound Pro", Quantity: 1, Price: 1000}},
		TotalAmount:     1000,
		PaymentMethod:   PaymentMethodTransfer,
		ShippingAddress: "Rua da Missão 12, Luanda",
	}
	assert.NoError(t, ValidateInput(valid))

	invalid := valid
	invalid.Items = []OrderItem{{ProductID: 1, Name: "AirSound Pro", Quantity: -1, Price: 1000}}
	assert.Error(t, ValidateInput(invalid), "dive must reach nested item rules")

	assert.Error(t, ValidateInput(ProductInput{
		Name: "X", Description: "Y", ImageURL: "Z", Price: -1,
	}))
	assert.NoError(t, ValidateInput(ProductInput{
		Name: "X", Description: "Y", ImageURL: "Z", Price: 0,
	}))
}
