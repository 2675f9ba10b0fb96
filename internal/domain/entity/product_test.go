package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount int
		quantity int
		want     string
	}{
		{"discounted", "10.00", 20, 3, "24.00"},
		{"no discount", "19.99", 0, 2, "39.98"},
		{"full discount", "5.00", 100, 7, "0.00"},
		{"rounds half away from zero", "0.05", 50, 1, "0.03"},
		{"rounds down", "3.33", 10, 1, "3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(decimal.RequireFromString(tt.price), tt.discount, tt.quantity)
			assert.Equal(t, tt.want, got.StringFixed(PriceScale))
		})
	}
}

func TestValidPrice(t *testing.T) {
	assert.True(t, ValidPrice(decimal.RequireFromString("0")))
	assert.True(t, ValidPrice(decimal.RequireFromString("99999999.99")))
	assert.False(t, ValidPrice(decimal.RequireFromString("100000000.00")))
	assert.False(t, ValidPrice(decimal.RequireFromString("1.001")))
	assert.False(t, ValidPrice(decimal.RequireFromString("-1")))
}

func TestValidQuantity(t *testing.T) {
	assert.True(t, ValidQuantity(1))
	assert.True(t, ValidQuantity(MaxItemQuantity))
	assert.False(t, ValidQuantity(0))
	assert.False(t, ValidQuantity(-3))
	assert.False(t, ValidQuantity(MaxItemQuantity+1))
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ValidAmount(decimal.Zero))
	assert.True(t, ValidAmount(decimal.RequireFromString("99999999.99")))
	assert.False(t, ValidAmount(decimal.RequireFromString("100000000")))
	assert.False(t, ValidAmount(LineTotal(decimal.RequireFromString("99999999.99"), 0, MaxItemQuantity)))
}

func TestAmountsRenderWithTwoDecimals(t *testing.T) {
	raw, err := json.Marshal(Product{Name: "Pen", Price: decimal.RequireFromString("10")})
	require.NoError(t, err)

	var product map[string]any
	require.NoError(t, json.Unmarshal(raw, &product))
	assert.Equal(t, "10.00", product["price"])
	assert.Equal(t, "Pen", product["name"])

	raw, err = json.Marshal(&Order{
		TotalAmount: decimal.RequireFromString("32.5"),
		Items:       []*OrderItem{{Quantity: 4, TotalAmount: decimal.RequireFromString("32.5")}},
	})
	require.NoError(t, err)

	var order struct {
		TotalAmount string `json:"total_amount"`
		Items       []struct {
			Quantity    int    `json:"quantity"`
			TotalAmount string `json:"total_amount"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(raw, &order))
	assert.Equal(t, "32.50", order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "32.50", order.Items[0].TotalAmount)
	assert.Equal(t, 4, order.Items[0].Quantity)
}

func TestValidDiscount(t *testing.T) {
	assert.True(t, ValidDiscount(0))
	assert.True(t, ValidDiscount(100))
	assert.False(t, ValidDiscount(-1))
	assert.False(t, ValidDiscount(101))
}

func TestSumTotals(t *testing.T) {
	assert.True(t, SumTotals(nil).IsZero())
	sum := SumTotals([]decimal.Decimal{decimal.RequireFromString("24.00"), decimal.RequireFromString("0.99")})
	assert.Equal(t, "24.99", sum.StringFixed(PriceScale))
}

func TestPrincipal(t *testing.T) {
	var anonymous *Principal
	assert.False(t, anonymous.IsAuthenticated())
	assert.False(t, anonymous.IsStaff())

	user := &User{IsStaff: true}
	assert.True(t, user.Roles().Contains(RoleStaff))
	assert.Equal(t, []string{"user", "staff"}, user.Roles().ToStrings())
	assert.Equal(t, Roles{RoleUser}, RolesFromStrings([]string{"user", "merchant"}))
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range []OrderStatus{"pending", "processing", "paid", "shipped", "delivered", "canceled", "returned"} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, OrderStatus("lost").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
