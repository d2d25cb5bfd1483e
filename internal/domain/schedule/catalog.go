package schedule

// base is the fixed base-activity table. Every day-type catalog is a
// subset of these entries, possibly with per-entry overrides.
var base = map[string]Activity{
	"sleep":      {ID: "sleep", Name: "Sleep", Icon: "😴", PlannedMinutes: 420, CalPerMinute: 0.9, Window: mustWindow("23:00", "06:00")},
	"windup":     {ID: "windup", Name: "Wind Up", Icon: "☀️", PlannedMinutes: 30, CalPerMinute: 1.5, Window: mustWindow("06:00", "06:30")},
	"run":        {ID: "run", Name: "Run", Icon: "🏃", PlannedMinutes: 40, CalPerMinute: 10, Window: mustWindow("06:30", "07:10")},
	"commute_am": {ID: "commute_am", Name: "Commute AM", Icon: "🚗", PlannedMinutes: 60, CalPerMinute: 1.2, Window: mustWindow("08:00", "09:00")},
	"work":       {ID: "work", Name: "Work", Icon: "💼", PlannedMinutes: 480, CalPerMinute: 1.5, Window: mustWindow("09:00", "17:00")},
	"commute_pm": {ID: "commute_pm", Name: "Commute PM", Icon: "🚙", PlannedMinutes: 80, CalPerMinute: 1.2, Window: mustWindow("17:00", "18:20")},
	"gym":        {ID: "gym", Name: "Gym", Icon: "💪", PlannedMinutes: 60, CalPerMinute: 8, Window: mustWindow("18:30", "19:30")},
	"walk":       {ID: "walk", Name: "Walk", Icon: "🚶", PlannedMinutes: 30, CalPerMinute: 4, Window: mustWindow("20:00", "20:30")},
	"meals":      {ID: "meals", Name: "Meals", Icon: "🍽️", PlannedMinutes: 60, CalPerMinute: 1.0, Window: mustWindow("19:00", "20:00")},
	"project":    {ID: "project", Name: "Project Work", Icon: "📊", PlannedMinutes: 120, CalPerMinute: 1.8, Window: mustWindow("20:30", "22:30")},
	"winddown":   {ID: "winddown", Name: "Wind Down", Icon: "🌙", PlannedMinutes: 30, CalPerMinute: 1.0, Window: mustWindow("22:30", "23:00")},
	"leisure":    {ID: "leisure", Name: "Leisure", Icon: "🎮", PlannedMinutes: 60, CalPerMinute: 1.2, Window: mustWindow("21:00", "22:00")},
}

// override mutates a copy of a base entry. Zero values leave the field alone.
type override struct {
	Name    string
	Icon    string
	Planned int
	Window  *TimeWindow
}

type catalogEntry struct {
	key string
	override
}

var catalogs = map[DayType][]catalogEntry{
	DaySoldier: {
		{key: "sleep"},
		{key: "windup"},
		{key: "run"},
		{key: "commute_am"},
		{key: "work"},
		{key: "commute_pm"},
		{key: "gym"},
		{key: "meals"},
		{key: "walk"},
		{key: "project"},
		{key: "winddown"},
	},
	DayFriday: {
		{key: "sleep"},
		{key: "windup"},
		{key: "run"},
		{key: "work", override: override{Name: "Work (WFH)", Planned: 360}},
		{key: "gym", override: override{Window: windowPtr("14:00", "15:00")}},
		{key: "meals"},
		{key: "project", override: override{Name: "Deep Project Work", Planned: 180, Window: windowPtr("19:00", "22:00")}},
		{key: "winddown"},
	},
	DaySaturday: {
		{key: "sleep"},
		{key: "windup"},
		{key: "run", override: override{Name: "Long Run", Planned: 60}},
		{key: "meals"},
		{key: "project", override: override{Name: "PlayStation League", Icon: "🎮"}},
		{key: "leisure"},
		{key: "winddown"},
	},
	DaySunday: {
		{key: "sleep"},
		{key: "windup"},
		{key: "meals"},
		{key: "leisure"},
		{key: "winddown"},
	},
}

// Catalog returns the ordered activity list for a day type. It is a pure
// function of the day type and the base table; unknown day types fall back
// to the soldier catalog. IDs are unique within the result and stable
// across day types.
func Catalog(dayType DayType) []Activity {
	entries, ok := catalogs[dayType]
	if !ok {
		entries = catalogs[DaySoldier]
	}

	out := make([]Activity, 0, len(entries))
	for _, e := range entries {
		act := base[e.key]
		if e.Name != "" {
			act.Name = e.Name
		}
		if e.Icon != "" {
			act.Icon = e.Icon
		}
		if e.Planned != 0 {
			act.PlannedMinutes = e.Planned
		}
		if e.Window != nil {
			act.Window = *e.Window
		}
		out = append(out, act)
	}
	return out
}

// Find returns the activity with the given id from a catalog.
func Find(activities []Activity, id string) (Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

func windowPtr(start, end string) *TimeWindow {
	w := mustWindow(start, end)
	return &w
}
