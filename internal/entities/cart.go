package entities

type Cart struct {
	ID         int64
	CustomerID int64
}

// CartItem is a single line of a customer's cart. There is at most one
// line per (cart, product); repeated adds merge into the quantity.
type CartItem struct {
	ProductID int64
	Quantity  int
}
