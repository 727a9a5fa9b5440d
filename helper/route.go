package helper

import (
	"airline_manager/model"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// GetOrCreateSection reuses the section for an ordered airport pair,
// creating it on first use. (A,B) and (B,A) are separate sections.
func GetOrCreateSection(tx *gorm.DB, departureCode, arrivalCode string) (*model.RouteSection, error) {
	var section model.RouteSection
	err := tx.Where("code_departure_airport = ? AND code_arrival_airport = ?", departureCode, arrivalCode).
		First(&section).Error
	if err == nil {
		return &section, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	section = model.RouteSection{
		CodeDepartureAirport: departureCode,
		CodeArrivalAirport:   arrivalCode,
	}
	if err := tx.Create(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

type routeLegInput struct {
	departureAirport string
	arrivalAirport   string
	waitingTime      int // minutes, 0 on the first leg
}

// flattenSections turns the nested input chain into an ordered slice so
// the walk below stays iterative whatever the chain depth.
func flattenSections(first model.FirstSectionInput) []routeLegInput {
	legs := []routeLegInput{{
		departureAirport: first.DepartureAirport,
		arrivalAirport:   first.ArrivalAirport,
	}}
	for next := first.Next; next != nil; next = next.Next {
		legs = append(legs, routeLegInput{
			departureAirport: next.DepartureAirport,
			arrivalAirport:   next.ArrivalAirport,
			waitingTime:      next.WaitingTime,
		})
	}
	return legs
}

// BuildRoutePair creates the outbound route, its mirrored return route
// and every segment of both, inside the caller's transaction. The
// return chain reuses the outbound waiting times in reverse order; its
// first departure is the outbound final arrival plus the given delta.
// Both routes get the same tariff-derived base price.
func BuildRoutePair(tx *gorm.DB, input model.CreateRouteInput) (string, string, error) {
	codeOutbound := input.AirlineCode + strconv.Itoa(input.NumberRoute)

	var existing model.Route
	if err := tx.First(&existing, "code = ?", codeOutbound).Error; err == nil {
		return "", "", fmt.Errorf("route %s: %w", codeOutbound, ErrAlreadyExists)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", err
	}

	var policy model.AirlinePricePolicy
	if err := tx.First(&policy, "airline_code = ?", input.AirlineCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", fmt.Errorf("price policy for %s: %w", input.AirlineCode, ErrPolicyMissing)
		}
		return "", "", err
	}

	codeReturn, err := pickReturnCode(tx, input.AirlineCode, input.NumberRoute)
	if err != nil {
		return "", "", err
	}

	routeOutbound := model.Route{
		Code:            codeOutbound,
		AirlineIataCode: input.AirlineCode,
		IsOutbound:      true,
		BasePrice:       1,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
	}
	routeReturn := model.Route{
		Code:            codeReturn,
		AirlineIataCode: input.AirlineCode,
		IsOutbound:      false,
		BasePrice:       1,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
	}
	if err := tx.Create(&routeOutbound).Error; err != nil {
		return "", "", err
	}
	if err := tx.Create(&routeReturn).Error; err != nil {
		return "", "", err
	}

	legs := flattenSections(input.Section)

	firstDeparture, err := ParseClock(input.Section.DepartureTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var prevDetail *model.RouteDetail
	departure := firstDeparture
	totalKm := 0.0
	finalArrival := 0

	for i, leg := range legs {
		depAirport, arrAirport, err := legAirports(tx, leg)
		if err != nil {
			return "", "", err
		}

		section, err := GetOrCreateSection(tx, depAirport.IataCode, arrAirport.IataCode)
		if err != nil {
			return "", "", err
		}

		distance := Haversine(depAirport.Latitude, depAirport.Longitude, arrAirport.Latitude, arrAirport.Longitude)
		totalKm += distance

		if i > 0 {
			departure = (finalArrival + leg.waitingTime) % 1440
		}
		arrival := ArrivalClock(departure, distance)
		finalArrival = arrival

		detail := model.RouteDetail{
			CodeRoute:      codeOutbound,
			IdRouteSection: section.ID,
			DepartureTime:  FormatClock(departure),
			ArrivalTime:    FormatClock(arrival),
		}
		if err := tx.Create(&detail).Error; err != nil {
			return "", "", err
		}
		if prevDetail != nil {
			if err := tx.Model(prevDetail).Update("id_next", detail.ID).Error; err != nil {
				return "", "", err
			}
		}
		prevDetail = &detail
	}

	price := RouteBasePrice(totalKm, len(legs)-1, policy)
	if err := tx.Model(&model.Route{}).Where("code IN ?", []string{codeOutbound, codeReturn}).
		Update("base_price", price).Error; err != nil {
		return "", "", err
	}

	// return chain: reversed legs with swapped airports, layovers mirrored
	prevDetail = nil
	departure = (finalArrival + input.DeltaForReturnRoute) % 1440

	for i := len(legs) - 1; i >= 0; i-- {
		leg := legs[i]
		depAirport, arrAirport, err := legAirports(tx, routeLegInput{
			departureAirport: leg.arrivalAirport,
			arrivalAirport:   leg.departureAirport,
		})
		if err != nil {
			return "", "", err
		}

		section, err := GetOrCreateSection(tx, depAirport.IataCode, arrAirport.IataCode)
		if err != nil {
			return "", "", err
		}

		distance := Haversine(depAirport.Latitude, depAirport.Longitude, arrAirport.Latitude, arrAirport.Longitude)
		arrival := ArrivalClock(departure, distance)

		detail := model.RouteDetail{
			CodeRoute:      codeReturn,
			IdRouteSection: section.ID,
			DepartureTime:  FormatClock(departure),
			ArrivalTime:    FormatClock(arrival),
		}
		if err := tx.Create(&detail).Error; err != nil {
			return "", "", err
		}
		if prevDetail != nil {
			if err := tx.Model(prevDetail).Update("id_next", detail.ID).Error; err != nil {
				return "", "", err
			}
		}
		prevDetail = &detail
		// the layover at this airport mirrors the outbound one
		departure = (arrival + leg.waitingTime) % 1440
	}

	return codeOutbound, codeReturn, nil
}

// pickReturnCode tries number+1 then number-1, the original numbering scheme
func pickReturnCode(tx *gorm.DB, airlineCode string, number int) (string, error) {
	for _, candidate := range []int{number + 1, number - 1} {
		code := airlineCode + strconv.Itoa(candidate)
		var route model.Route
		err := tx.First(&route, "code = ?", code).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("no free code for the return route of %s%d: %w", airlineCode, number, ErrAlreadyExists)
}

func legAirports(tx *gorm.DB, leg routeLegInput) (*model.Airport, *model.Airport, error) {
	var dep, arr model.Airport
	if err := tx.First(&dep, "iata_code = ?", leg.departureAirport).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("airport %s: %w", leg.departureAirport, ErrNotFound)
		}
		return nil, nil, err
	}
	if err := tx.First(&arr, "iata_code = ?", leg.arrivalAirport).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("airport %s: %w", leg.arrivalAirport, ErrNotFound)
		}
		return nil, nil, err
	}
	return &dep, &arr, nil
}

// ChainOrder sorts a route's segments head to tail. It fails on a chain
// with no head, a cycle, a branch, or disconnected segments.
func ChainOrder(details []model.RouteDetail) ([]model.RouteDetail, error) {
	if len(details) == 0 {
		return nil, fmt.Errorf("empty chain: %w", ErrInvalidChain)
	}

	byId := make(map[uint]model.RouteDetail, len(details))
	referenced := make(map[uint]bool)
	for _, d := range details {
		byId[d.ID] = d
		if d.IdNext != nil {
			if referenced[*d.IdNext] {
				return nil, fmt.Errorf("branching chain: %w", ErrInvalidChain)
			}
			referenced[*d.IdNext] = true
		}
	}

	var head *model.RouteDetail
	for _, d := range details {
		if !referenced[d.ID] {
			if head != nil {
				return nil, fmt.Errorf("disconnected chain: %w", ErrInvalidChain)
			}
			d := d
			head = &d
		}
	}
	if head == nil {
		return nil, fmt.Errorf("no chain head: %w", ErrInvalidChain)
	}

	ordered := make([]model.RouteDetail, 0, len(details))
	visited := make(map[uint]bool)
	current := head
	for current != nil {
		if visited[current.ID] {
			return nil, fmt.Errorf("cyclic chain: %w", ErrInvalidChain)
		}
		visited[current.ID] = true
		ordered = append(ordered, *current)
		if current.IdNext == nil {
			break
		}
		next, ok := byId[*current.IdNext]
		if !ok {
			return nil, fmt.Errorf("dangling next pointer: %w", ErrInvalidChain)
		}
		current = &next
	}

	if len(ordered) != len(details) {
		return nil, fmt.Errorf("disconnected chain: %w", ErrInvalidChain)
	}
	return ordered, nil
}

// routeEndpoints loads a route's chain and returns its first departure
// and final arrival airport codes
func routeEndpoints(db *gorm.DB, code string) (string, string, error) {
	var details []model.RouteDetail
	if err := db.Preload("Section").Where("code_route = ?", code).Find(&details).Error; err != nil {
		return "", "", err
	}
	if len(details) == 0 {
		return "", "", fmt.Errorf("route %s: %w", code, ErrNotFound)
	}
	ordered, err := ChainOrder(details)
	if err != nil {
		return "", "", err
	}
	return ordered[0].Section.CodeDepartureAirport, ordered[len(ordered)-1].Section.CodeArrivalAirport, nil
}

// FindReverseRoute infers the paired route of code by endpoint matching:
// another route departing where this one ends and arriving where it
// starts. Returns "" when no such route exists.
func FindReverseRoute(db *gorm.DB, code string) (string, error) {
	start, end, err := routeEndpoints(db, code)
	if err != nil {
		return "", err
	}

	var candidates []string
	if err := db.Model(&model.Route{}).Where("code <> ?", code).Order("code").Pluck("code", &candidates).Error; err != nil {
		return "", err
	}

	for _, candidate := range candidates {
		otherStart, otherEnd, err := routeEndpoints(db, candidate)
		if err != nil {
			// a foreign broken or empty chain must not poison this lookup
			if errors.Is(err, ErrInvalidChain) || errors.Is(err, ErrNotFound) {
				continue
			}
			return "", err
		}
		if otherStart == end && otherEnd == start {
			return candidate, nil
		}
	}
	return "", nil
}

// DescribeRoute walks the chain head to tail: legs with layovers, plus
// the total duration (legs + layovers) formatted H:MM, which can pass 24h
func DescribeRoute(db *gorm.DB, code string) (*model.RouteDescription, error) {
	var details []model.RouteDetail
	if err := db.Preload("Section").Where("code_route = ?", code).Find(&details).Error; err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, fmt.Errorf("route %s: %w", code, ErrNotFound)
	}

	ordered, err := ChainOrder(details)
	if err != nil {
		return nil, err
	}

	description := model.RouteDescription{RouteCode: code}
	totalMinutes := 0
	prevArrival := -1

	for _, detail := range ordered {
		departure, err := ParseClock(detail.DepartureTime)
		if err != nil {
			return nil, err
		}
		arrival, err := ParseClock(detail.ArrivalTime)
		if err != nil {
			return nil, err
		}

		legDuration := ClockDiff(departure, arrival)
		totalMinutes += legDuration

		var layover *int
		if prevArrival >= 0 {
			l := ClockDiff(prevArrival, departure)
			layover = &l
			totalMinutes += l
		}

		description.Segments = append(description.Segments, model.RouteLeg{
			IdRouteDetail:  detail.ID,
			From:           detail.Section.CodeDepartureAirport,
			To:             detail.Section.CodeArrivalAirport,
			DepartureTime:  detail.DepartureTime,
			ArrivalTime:    detail.ArrivalTime,
			LayoverMinutes: layover,
		})

		prevArrival = arrival
	}

	description.TotalDuration = fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
	return &description, nil
}
