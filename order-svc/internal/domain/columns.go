package domain

// Column positions are 1-based, matching SetCell addressing.
const (
	MenuColID = iota + 1
	MenuColCategory
	MenuColName
	MenuColPrice
	MenuColDescription
	MenuColVegetarian
	MenuColAvailable
)

const (
	SessionColID = iota + 1
	SessionColName
	SessionColStartTime
	SessionColStatus
	SessionColTotalAmount
	SessionColPeople
)

const (
	OrderColID = iota + 1
	OrderColSessionID
	OrderColUserName
	OrderColItemID
	OrderColItemName
	OrderColCategory
	OrderColQuantity
	OrderColPricePerItem
	OrderColTotalPrice
	OrderColStatus
	OrderColOrderTime
	OrderColServedTime
	OrderColNotes
)

// Columns is the header row of every table.
var Columns = map[string][]string{
	TableMenu: {
		"id", "category", "name", "price", "description", "vegetarian", "available",
	},
	TableSessions: {
		"sessionId", "sessionName", "startTime", "status", "totalAmount", "people",
	},
	TableOrders: {
		"orderId", "sessionId", "userName", "itemId", "itemName", "category", "quantity",
		"pricePerItem", "totalPrice", "status", "orderTime", "servedTime", "notes",
	},
}
