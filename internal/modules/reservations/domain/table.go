package domain

// Table is a statically enumerated seating resource with a fixed capacity.
type Table struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Seats    int    `json:"seats"`
	Location string `json:"location"`
}

var tables = []Table{
	{ID: 1, Name: "Table 1", Seats: 2, Location: "Window"},
	{ID: 2, Name: "Table 2", Seats: 2, Location: "Window"},
	{ID: 3, Name: "Table 3", Seats: 4, Location: "Center"},
	{ID: 4, Name: "Table 4", Seats: 4, Location: "Center"},
	{ID: 5, Name: "Table 5", Seats: 6, Location: "Private"},
	{ID: 6, Name: "Table 6", Seats: 8, Location: "Private"},
}

// Tables returns the full table inventory.
func Tables() []Table {
	return tables
}

// TablesFor filters the inventory to tables seating at least partySize
// guests. A party larger than every table yields an empty list.
func TablesFor(partySize int) []Table {
	offered := make([]Table, 0, len(tables))
	for _, table := range tables {
		if table.Seats >= partySize {
			offered = append(offered, table)
		}
	}
	return offered
}

// FindTable looks up a table by id.
func FindTable(id int) (Table, bool) {
	for _, table := range tables {
		if table.ID == id {
			return table, true
		}
	}
	return Table{}, false
}
