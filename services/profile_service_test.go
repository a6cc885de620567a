package services

import (
	"context"
	"strconv"
	"testing"

	"nannyhub/models"
)

func newProfileFixture() (*ProfileService, *memStore) {
	store := newMemStore()
	return NewProfileService(memNannyStore{store}, memFamilyStore{store}), store
}

func nannyRequest() models.NannyProfileRequest {
	return models.NannyProfileRequest{
		FullName:        "Anna Smith",
		City:            "Portland",
		Zip:             "97201",
		YearsExperience: "5",
		Availability:    "weekdays",
		Bio:             "CPR certified",
		ServicesOffered: "infant care",
		PreferredRate:   "22.50",
		ContactInfo:     "anna@example.com",
	}
}

func familyRequest() models.FamilyProfileRequest {
	return models.FamilyProfileRequest{
		FullName:    "The Parkers",
		City:        "Portland",
		Zip:         "97201",
		Needs:       "after-school care",
		Schedule:    "weekdays 3-6pm",
		Budget:      "25",
		Bio:         "two kids",
		ContactInfo: "parkers@example.com",
	}
}

func TestUpsertNannyRoleGate(t *testing.T) {
	svc, _ := newProfileFixture()
	family := &models.User{ID: 1, Role: models.RoleFamily}

	_, err := svc.UpsertNanny(context.Background(), family, nannyRequest())
	wantAPIError(t, err, 403, "only nannies can create profiles")
}

func TestUpsertNannyMissingFields(t *testing.T) {
	svc, _ := newProfileFixture()
	nanny := &models.User{ID: 1, Role: models.RoleNanny}

	req := nannyRequest()
	req.City = "  "
	req.PreferredRate = ""

	_, err := svc.UpsertNanny(context.Background(), nanny, req)
	wantAPIError(t, err, 400, "missing fields: city, preferred_rate")
}

func TestUpsertNannyNumericValidation(t *testing.T) {
	svc, _ := newProfileFixture()
	nanny := &models.User{ID: 1, Role: models.RoleNanny}
	ctx := context.Background()

	req := nannyRequest()
	req.YearsExperience = "five"
	_, err := svc.UpsertNanny(ctx, nanny, req)
	wantAPIError(t, err, 400, "years_experience must be an integer and preferred_rate must be a number")

	req = nannyRequest()
	req.YearsExperience = "2.5"
	_, err = svc.UpsertNanny(ctx, nanny, req)
	wantAPIError(t, err, 400, "years_experience must be an integer and preferred_rate must be a number")

	req = nannyRequest()
	req.PreferredRate = "-1"
	_, err = svc.UpsertNanny(ctx, nanny, req)
	wantAPIError(t, err, 400, "years_experience must be an integer and preferred_rate must be a number")
}

func TestUpsertNannyIdempotent(t *testing.T) {
	svc, store := newProfileFixture()
	nanny := &models.User{ID: 7, Role: models.RoleNanny}
	ctx := context.Background()

	first, err := svc.UpsertNanny(ctx, nanny, nannyRequest())
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	updated := nannyRequest()
	updated.City = "Salem"
	second, err := svc.UpsertNanny(ctx, nanny, updated)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second upsert created profile %d, want %d", second.ID, first.ID)
	}
	if len(store.nannies) != 1 {
		t.Errorf("profiles stored = %d, want 1", len(store.nannies))
	}
	if store.nannies[7].City != "Salem" {
		t.Errorf("city = %q after update", store.nannies[7].City)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v then %v", first.UpdatedAt, second.UpdatedAt)
	}
}

func TestGetNannyNotFound(t *testing.T) {
	svc, _ := newProfileFixture()
	_, err := svc.GetNanny(context.Background(), 99)
	wantAPIError(t, err, 404, "not found")
}

func TestListNanniesFiltersAndOrder(t *testing.T) {
	svc, _ := newProfileFixture()
	ctx := context.Background()

	seed := func(userID int, city, zip string, years int, rate string) {
		req := nannyRequest()
		req.City = city
		req.Zip = zip
		req.YearsExperience = models.FlexNumber(strconv.Itoa(years))
		req.PreferredRate = models.FlexNumber(rate)
		if _, err := svc.UpsertNanny(ctx, &models.User{ID: userID, Role: models.RoleNanny}, req); err != nil {
			t.Fatalf("seed user %d: %v", userID, err)
		}
	}
	seed(1, "Portland", "97201", 2, "18")
	seed(2, "portland", "97209", 6, "30")
	seed(3, "Seattle", "98101", 6, "28")

	all, err := svc.ListNannies(ctx, models.NannyProfileFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered list = %d, want 3", len(all))
	}

	city, _ := svc.ListNannies(ctx, models.NannyProfileFilter{City: "PORTLAND"})
	if len(city) != 2 {
		t.Errorf("city filter matched %d, want 2 (case-insensitive)", len(city))
	}

	minExp := 5
	experienced, _ := svc.ListNannies(ctx, models.NannyProfileFilter{MinExperience: &minExp})
	if len(experienced) != 2 {
		t.Errorf("min_experience filter matched %d, want 2", len(experienced))
	}

	maxRate := 20.0
	cheap, _ := svc.ListNannies(ctx, models.NannyProfileFilter{MaxRate: &maxRate})
	if len(cheap) != 1 || cheap[0].UserID != 1 {
		t.Errorf("max_rate filter = %+v, want only user 1", cheap)
	}

	combined, _ := svc.ListNannies(ctx, models.NannyProfileFilter{City: "Portland", MinExperience: &minExp})
	if len(combined) != 1 || combined[0].UserID != 2 {
		t.Errorf("combined filter = %+v, want only user 2", combined)
	}

	none, _ := svc.ListNannies(ctx, models.NannyProfileFilter{Zip: "00000"})
	if none == nil || len(none) != 0 {
		t.Errorf("no-match list = %v, want empty non-nil slice", none)
	}
}

func TestUpsertFamily(t *testing.T) {
	svc, store := newProfileFixture()
	family := &models.User{ID: 3, Role: models.RoleFamily}
	ctx := context.Background()

	if _, err := svc.UpsertFamily(ctx, family, familyRequest()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if store.families[3].Budget != 25 {
		t.Errorf("budget = %v, want 25", store.families[3].Budget)
	}

	_, err := svc.UpsertFamily(ctx, &models.User{ID: 4, Role: models.RoleNanny}, familyRequest())
	wantAPIError(t, err, 403, "only families can create profiles")

	missing := familyRequest()
	missing.Needs = ""
	missing.Budget = "  "
	_, err = svc.UpsertFamily(ctx, family, missing)
	wantAPIError(t, err, 400, "missing fields: needs, budget")

	bad := familyRequest()
	bad.Budget = "lots"
	_, err = svc.UpsertFamily(ctx, family, bad)
	wantAPIError(t, err, 400, "budget must be a number")
}

func TestUpsertFamilyIdempotent(t *testing.T) {
	svc, store := newProfileFixture()
	family := &models.User{ID: 3, Role: models.RoleFamily}
	ctx := context.Background()

	first, err := svc.UpsertFamily(ctx, family, familyRequest())
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	updated := familyRequest()
	updated.Schedule = "weekends"
	second, err := svc.UpsertFamily(ctx, family, updated)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second upsert created profile %d, want %d", second.ID, first.ID)
	}
	if len(store.families) != 1 {
		t.Errorf("profiles stored = %d, want 1", len(store.families))
	}
	if store.families[3].Schedule != "weekends" {
		t.Errorf("schedule = %q after update", store.families[3].Schedule)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v then %v", first.UpdatedAt, second.UpdatedAt)
	}
}

func TestGetFamilyByUser(t *testing.T) {
	svc, _ := newProfileFixture()
	family := &models.User{ID: 3, Role: models.RoleFamily}
	ctx := context.Background()

	_, err := svc.GetFamilyByUser(ctx, family)
	wantAPIError(t, err, 404, "not found")

	if _, err := svc.UpsertFamily(ctx, family, familyRequest()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	profile, err := svc.GetFamilyByUser(ctx, family)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if profile.FullName != "The Parkers" {
		t.Errorf("full_name = %q", profile.FullName)
	}
}
