package constants

const (
	ROLE_ADMIN    = "Admin"
	ROLE_AIRLINE  = "Airline"
	ROLE_CUSTOMER = "Customer"
)

const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER = "Input id must be a number"
	MISSING_LOGIN_INPUT      = "Missing email or password"
	INVALID_EMAIL            = "Email does not exist"
	INVALID_PASSWORD         = "Password is incorrect"
	EMAIL_ALREADY_REGISTERED = "Email already registered"
	NOT_PERMISSION           = "You do not have permission to perform this action"

	AIRLINE_NOT_FOUND      = "Airline not found"
	AIRLINE_ALREADY_EXISTS = "Airline already exists"
	AIRPORT_NOT_FOUND      = "Airport not found"
	AIRPORT_ALREADY_EXISTS = "Airport with this IATA code already exists"
	CITY_NOT_FOUND         = "City not found"
	AIRCRAFT_NOT_FOUND     = "Aircraft not found"
	CLASS_NOT_FOUND        = "Class not found"

	ROUTE_NOT_FOUND             = "Route not found"
	ROUTE_ALREADY_EXISTS        = "Route already present in the database"
	ROUTE_RETURN_NUMBER_BUSY    = "The number chosen for the route is free, but the number for the return route is busy"
	ROUTE_RETURN_NOT_FOUND      = "Return route not found"
	ROUTE_NOT_OUTBOUND          = "To schedule flights, select the outbound route, not the return route"
	ROUTE_INVALID_CHAIN         = "Invalid route chain"
	ROUTE_PRICE_POLICY_REQUIRED = "Before adding a route, add a price policy"

	SEAT_MAP_MAX_COLS_EXCEEDED  = "Exceeded the maximum number of columns available"
	SEAT_MAP_MAX_SEATS_EXCEEDED = "Exceeded the maximum number of seats available"
	SEAT_MAP_INCOMPATIBLE       = "Incompatible aircraft cabin layout"
	SEAT_MAP_SOURCE_EMPTY       = "No cabins found for source aircraft"

	FLIGHT_NOT_FOUND          = "Flight not found"
	FLIGHT_DATE_OUT_OF_RANGE  = "Date is outside the route validity period"
	FLIGHT_AIRCRAFT_PINNED    = "Aircraft already assigned to different routes"
	FLIGHT_SCHEDULE_CONFLICT  = "Aircraft already scheduled for a flight on one of these dates"
	SEAT_NOT_FOUND            = "Seat not found"
	SEAT_ALREADY_OCCUPIED     = "Seat is already occupied"
	SEAT_WRONG_AIRCRAFT       = "The selected seat does not belong to the selected flight"
	BAGGAGE_NOT_FOUND         = "Baggage not found"
	BAGGAGE_RULE_NOT_FOUND    = "Baggage rule not found"
	BAGGAGE_RULE_EXISTS       = "Baggage rules are already in place"
	BAGGAGE_EXTRA_NOT_ALLOWED = "You cannot purchase this type of baggage"
	BAGGAGE_POLICY_EXISTS     = "Baggage class policy already exists"
	BAGGAGE_POLICY_NOT_FOUND  = "Class baggage policy not found"

	PRICE_POLICY_NOT_FOUND       = "Price policy not found"
	CLASS_PRICE_POLICY_NOT_FOUND = "Class price policy not found"

	END_DATE_IN_PAST        = "End date cannot be before today"
	END_DATE_NOT_EXTENDED   = "The new end date must be later than the old one"
	TICKET_NOT_FOUND        = "Ticket not found"
	USER_NOT_FOUND          = "User not found"
	PURCHASE_SUCCESS        = "The tickets have been successfully purchased"
	FLIGHT_STATUS_SCHEDULED = "SCHEDULED"
	FLIGHT_STATUS_DEPARTED  = "DEPARTED"
	FLIGHT_STATUS_COMPLETED = "COMPLETED"
	ROUTE_STATUS_ACTIVE     = "ACTIVE"
	ROUTE_STATUS_EXPIRED    = "EXPIRED"
)
