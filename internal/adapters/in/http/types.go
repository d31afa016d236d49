package http

// Transport types of the REST API. Field names and JSON keys follow openapi.yaml.

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Coordinates defines model for Coordinates. Both fields are pointers so that a
// missing value can be told apart from zero.
type Coordinates struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// CenterRequest defines model for CenterRequest, shared by creation and partial update.
type CenterRequest struct {
	Name        *string      `json:"name,omitempty"`
	Capacity    *string      `json:"capacity,omitempty"`
	Status      *string      `json:"status,omitempty"`
	CurrentLoad *int         `json:"currentLoad,omitempty"`
	MaxCapacity *int         `json:"maxCapacity,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Center defines model for Center.
type Center struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Capacity    string      `json:"capacity"`
	Status      string      `json:"status"`
	CurrentLoad int         `json:"currentLoad"`
	MaxCapacity int         `json:"maxCapacity"`
	Coordinates Coordinates `json:"coordinates"`
}

// OrderRequest defines model for OrderRequest.
type OrderRequest struct {
	CustomerID  *int64       `json:"customerId,omitempty"`
	Size        *string      `json:"size,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// OrderResponse defines model for OrderResponse.
type OrderResponse struct {
	OrderID                 int64       `json:"orderId"`
	CustomerID              int64       `json:"customerId"`
	Size                    string      `json:"size"`
	AssignedLogisticsCenter *string     `json:"assignedLogisticsCenter"`
	Coordinates             Coordinates `json:"coordinates"`
	Status                  string      `json:"status"`
	Message                 string      `json:"message"`
}

// Order defines model for Order.
type Order struct {
	ID             int64       `json:"id"`
	CustomerID     int64       `json:"customerId"`
	Size           string      `json:"size"`
	Status         string      `json:"status"`
	AssignedCenter *string     `json:"assignedCenter"`
	Coordinates    Coordinates `json:"coordinates"`
}

// OrderAssignation defines model for OrderAssignation.
type OrderAssignation struct {
	Distance                *float64 `json:"distance"`
	OrderID                 int64    `json:"orderId"`
	AssignedLogisticsCenter *string  `json:"assignedLogisticsCenter"`
	Status                  string   `json:"status"`
	Message                 string   `json:"message"`
}

// AssignationResponse defines model for AssignationResponse.
type AssignationResponse struct {
	ProcessedOrders []OrderAssignation `json:"processed-orders"`
}

func coordinatesOf(latitude, longitude float64) Coordinates {
	return Coordinates{Latitude: &latitude, Longitude: &longitude}
}
