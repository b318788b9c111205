package schedule

// DateLayout formats itinerary timestamps as calendar dates.
const DateLayout = "2006-01-02"

// ItineraryRow is one (voyage, stop) pair flattened for export and charts.
type ItineraryRow struct {
	Vessel        string  `json:"vessel"`
	Leg           string  `json:"leg"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Departure     string  `json:"departure"`
	Arrival       string  `json:"arrival"`
	OperationEnd  string  `json:"operation_end"`
	TransitDays   float64 `json:"transit_days"`
	OperationDays float64 `json:"operation_days"`
}

// Table flattens the schedule: voyages in generation order, stops in leg order.
func (s *Scheduler) Table() []ItineraryRow {
	rows := make([]ItineraryRow, 0, len(s.voyages)*s.legCount())
	for _, v := range s.voyages {
		for _, st := range v.Itinerary {
			rows = append(rows, ItineraryRow{
				Vessel:        v.VesselName,
				Leg:           st.LegName,
				From:          st.PortFrom,
				To:            st.PortTo,
				Departure:     st.Departure.Format(DateLayout),
				Arrival:       st.Arrival.Format(DateLayout),
				OperationEnd:  st.OperationEnd.Format(DateLayout),
				TransitDays:   st.TransitDays,
				OperationDays: st.OperationDays,
			})
		}
	}
	return rows
}
