package client

import "errors"

// ErrProductNotFound is returned when the catalog has no product with the
// requested id. Callers must not add such a product to the cart.
var ErrProductNotFound = errors.New("product not found")
