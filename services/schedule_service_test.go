package services

import (
	"encoding/json"
	"testing"
	"time"

	"gymnet-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var testWeekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func testSession(ts time.Time, group int, created time.Time) models.Schedule {
	return models.Schedule{
		ID:        uuid.New(),
		Group:     group,
		Timestamp: ts,
		Address:   "12 Main St",
		Gym: models.Gym{
			Slug: "iron-temple",
			Name: "Iron Temple",
			Location: models.Location{
				Latitude:  55.75,
				Longitude: 37.61,
				Address:   "12 Main St",
			},
		},
		Profile: models.Profile{
			IsStaff:     true,
			GroupNumber: group,
			User: models.User{
				Username:  "coach",
				FirstName: "Pat",
				LastName:  "Ruiz",
				Email:     "coach@example.com",
			},
		},
		Model: gorm.Model{CreatedAt: created},
	}
}

func TestBuildWeeklyGrid_EmptyInputStillFullShape(t *testing.T) {
	hours := HourRange{From: 12, To: 18}
	grid := BuildWeeklyGrid(nil, hours, time.UTC)

	if len(grid) != 7 {
		t.Fatalf("expected 7 weekday keys, got %d", len(grid))
	}
	for _, day := range testWeekdays {
		slots, ok := grid[day]
		if !ok {
			t.Fatalf("missing weekday %q", day)
		}
		if len(slots) != 7 {
			t.Errorf("%s: expected 7 tracked hours, got %d", day, len(slots))
		}
		for h := hours.From; h <= hours.To; h++ {
			slot, ok := slots[h]
			if !ok {
				t.Fatalf("%s: missing slot for hour %d", day, h)
			}
			if slot.Time != h {
				t.Errorf("%s[%d]: slot time = %d, want %d", day, h, slot.Time, h)
			}
			if slot.Event != nil {
				t.Errorf("%s[%d]: expected nil event", day, h)
			}
		}
		if _, ok := slots[hours.From-1]; ok {
			t.Errorf("%s: hour %d is outside the window and must be absent", day, hours.From-1)
		}
		if _, ok := slots[hours.To+1]; ok {
			t.Errorf("%s: hour %d is outside the window and must be absent", day, hours.To+1)
		}
	}
}

func TestBuildWeeklyGrid_PlacesSessionAtLocalizedWeekdayHour(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	wed := time.Date(2026, 8, 26, 14, 0, 0, 0, time.UTC)
	records := []models.Schedule{testSession(wed, 3, wed.Add(-24*time.Hour))}

	grid := BuildWeeklyGrid(records, HourRange{From: 12, To: 18}, time.UTC)

	slot := grid["wednesday"][14]
	if slot.Time != 14 {
		t.Fatalf("slot time = %d, want 14", slot.Time)
	}
	if slot.Event == nil {
		t.Fatal("expected an event at wednesday 14:00")
	}
	if slot.Event.Group != 3 {
		t.Errorf("event group = %d, want 3", slot.Event.Group)
	}
	if slot.Event.Club.Slug != "iron-temple" {
		t.Errorf("event club slug = %q, want iron-temple", slot.Event.Club.Slug)
	}
	if slot.Event.User.User.Username != "coach" {
		t.Errorf("event instructor = %q, want coach", slot.Event.User.User.Username)
	}

	empty := grid["wednesday"][12]
	if empty.Time != 12 || empty.Event != nil {
		t.Errorf("wednesday 12:00 should be an explicit empty slot, got %+v", empty)
	}
}

func TestBuildWeeklyGrid_TimezoneShiftsWeekdayAndHour(t *testing.T) {
	// Wednesday 23:30 UTC is Thursday 02:30 at UTC+3.
	wedLate := time.Date(2026, 8, 26, 23, 30, 0, 0, time.UTC)
	records := []models.Schedule{testSession(wedLate, 1, wedLate)}

	loc := time.FixedZone("UTC+3", 3*60*60)
	grid := BuildWeeklyGrid(records, HourRange{From: 12, To: 18}, loc)

	if slot, ok := grid["thursday"][2]; !ok || slot.Event == nil {
		t.Fatalf("expected the session at thursday 02:00 in the viewer zone, got %+v", grid["thursday"])
	}
	if _, ok := grid["wednesday"][23]; ok {
		t.Error("session must not remain on its UTC weekday")
	}
}

func TestBuildWeeklyGrid_SessionOutsideWindowStillPlaced(t *testing.T) {
	// The window governs gap-filling only; a 20:00 session still shows up.
	wed := time.Date(2026, 8, 26, 20, 0, 0, 0, time.UTC)
	records := []models.Schedule{testSession(wed, 2, wed)}

	grid := BuildWeeklyGrid(records, HourRange{From: 12, To: 18}, time.UTC)

	slot, ok := grid["wednesday"][20]
	if !ok || slot.Event == nil {
		t.Fatal("expected the out-of-window session at wednesday 20:00")
	}
	if _, ok := grid["monday"][20]; ok {
		t.Error("hour 20 must not be gap-filled on other days")
	}
}

func TestBuildWeeklyGrid_CollisionLatestCreatedWins(t *testing.T) {
	wed := time.Date(2026, 8, 26, 14, 0, 0, 0, time.UTC)
	older := testSession(wed, 1, wed.Add(-48*time.Hour))
	newer := testSession(wed.Add(15*time.Minute), 2, wed.Add(-1*time.Hour))

	// Pass the newer record first: creation order decides, not input order.
	grid := BuildWeeklyGrid([]models.Schedule{newer, older}, HourRange{From: 12, To: 18}, time.UTC)

	slot := grid["wednesday"][14]
	if slot.Event == nil {
		t.Fatal("expected exactly one surviving event at wednesday 14:00")
	}
	if slot.Event.Group != 2 {
		t.Errorf("collision winner group = %d, want 2 (most recently created)", slot.Event.Group)
	}
}

func TestBuildWeeklyGrid_SkipsRecordWithoutTimestamp(t *testing.T) {
	wed := time.Date(2026, 8, 26, 14, 0, 0, 0, time.UTC)
	good := testSession(wed, 3, wed)
	bad := testSession(time.Time{}, 9, wed)

	grid := BuildWeeklyGrid([]models.Schedule{bad, good}, HourRange{From: 12, To: 18}, time.UTC)

	slot := grid["wednesday"][14]
	if slot.Event == nil || slot.Event.Group != 3 {
		t.Fatalf("good record should survive a bad sibling, got %+v", slot.Event)
	}
	for _, day := range testWeekdays {
		for h, s := range grid[day] {
			if s.Event != nil && s.Event.Group == 9 {
				t.Fatalf("record without timestamp must be skipped, found at %s[%d]", day, h)
			}
		}
	}
}

func TestBuildWeeklyGrid_DoesNotMutateInput(t *testing.T) {
	wed := time.Date(2026, 8, 26, 14, 0, 0, 0, time.UTC)
	records := []models.Schedule{
		testSession(wed, 1, wed.Add(-2*time.Hour)),
		testSession(wed.Add(time.Hour), 2, wed.Add(-1*time.Hour)),
	}
	firstID := records[0].ID

	BuildWeeklyGrid(records, HourRange{From: 12, To: 18}, time.UTC)

	if records[0].ID != firstID || records[0].Group != 1 {
		t.Error("builder reordered or mutated its input slice")
	}
}

func TestBuildWeeklyGrid_DeterministicOutput(t *testing.T) {
	wed := time.Date(2026, 8, 26, 14, 0, 0, 0, time.UTC)
	records := []models.Schedule{
		testSession(wed, 1, wed.Add(-3*time.Hour)),
		testSession(wed.Add(2*time.Hour), 2, wed.Add(-2*time.Hour)),
		testSession(wed.Add(26*time.Hour), 3, wed.Add(-1*time.Hour)),
	}

	first, err := json.Marshal(BuildWeeklyGrid(records, HourRange{From: 12, To: 18}, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(BuildWeeklyGrid(records, HourRange{From: 12, To: 18}, time.UTC))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("two builds over the same snapshot produced different output")
	}
}

func TestRecognizedHours_DefaultAndOverride(t *testing.T) {
	t.Setenv("SCHEDULE_HOUR_FROM", "")
	t.Setenv("SCHEDULE_HOUR_TO", "")
	hours := RecognizedHours()
	if hours.From != 12 || hours.To != 18 {
		t.Errorf("default window = %d..%d, want 12..18", hours.From, hours.To)
	}

	t.Setenv("SCHEDULE_HOUR_FROM", "8")
	t.Setenv("SCHEDULE_HOUR_TO", "22")
	hours = RecognizedHours()
	if hours.From != 8 || hours.To != 22 {
		t.Errorf("override window = %d..%d, want 8..22", hours.From, hours.To)
	}

	// Inverted bounds are normalized, never an empty window.
	t.Setenv("SCHEDULE_HOUR_FROM", "18")
	t.Setenv("SCHEDULE_HOUR_TO", "10")
	hours = RecognizedHours()
	if hours.From != 10 || hours.To != 18 {
		t.Errorf("inverted window = %d..%d, want 10..18", hours.From, hours.To)
	}
}
