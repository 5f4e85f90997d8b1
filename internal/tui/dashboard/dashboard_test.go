package dashboard

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/janhvi-crypto/CraftConnect/internal/store"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	dm, ok := updated.(*Model)
	if !ok {
		t.Fatalf("Update returned unexpected model type %T", updated)
	}
	return dm
}

func press(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	updated, cmd := m.Update(msg)
	if updated != m {
		t.Fatalf("Update returned a different model instance")
	}
	return cmd
}

func viewString(m *Model) string {
	return m.render()
}

func TestGreetingAndStats(t *testing.T) {
	m := newTestModel(t)
	press(t, m, stateLoadedMsg{
		state: &store.State{
			Products: []*store.Product{
				{TitleEnglish: "Blue Pottery Vase", Price: 1200},
				{TitleEnglish: "Terracotta Diya Set", Price: 450},
			},
			Campaigns: []*store.Campaign{
				{ID: "c1", Name: "Diwali Push"},
			},
		},
		profile: &store.Artisan{Name: "Kamala Devi", Location: "Jaipur, Rajasthan"},
	})

	view := viewString(m)
	for _, want := range []string{
		"Namaste, Kamala Devi!",
		"Jaipur, Rajasthan",
		"Total Products",
		"Campaigns",
		"2.4K",
		"486",
		"Terracotta Diya Set",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("dashboard view missing %q", want)
		}
	}
}

func TestGreetingWithoutProfile(t *testing.T) {
	m := newTestModel(t)
	press(t, m, stateLoadedMsg{state: &store.State{}})

	view := viewString(m)
	if !strings.Contains(view, "Namaste, Artisan!") {
		t.Errorf("expected generic greeting without a profile")
	}
	if !strings.Contains(view, "No products yet") {
		t.Errorf("expected empty-catalog hint")
	}
}

func TestRecentProductsShowsNewestThree(t *testing.T) {
	m := newTestModel(t)
	press(t, m, stateLoadedMsg{state: &store.State{
		Products: []*store.Product{
			{TitleEnglish: "Oldest"},
			{TitleEnglish: "Second"},
			{TitleEnglish: "Third"},
			{TitleEnglish: "Newest"},
		},
	}})

	view := viewString(m)
	if strings.Contains(view, "Oldest") {
		t.Errorf("oldest product should not appear in recent list")
	}
	for _, want := range []string{"Newest", "Third", "Second"} {
		if !strings.Contains(view, want) {
			t.Errorf("recent list missing %q", want)
		}
	}
}

func TestCreateProductQuitsWithAction(t *testing.T) {
	m := newTestModel(t)
	press(t, m, stateLoadedMsg{state: &store.State{}})

	cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command from Create Product")
	}
	if m.Action() != ActionCreateProduct {
		t.Errorf("Action() = %q, want %q", m.Action(), ActionCreateProduct)
	}
}

func TestCreateShortcutKey(t *testing.T) {
	m := newTestModel(t)
	press(t, m, stateLoadedMsg{state: &store.State{}})

	// Move the cursor elsewhere first; "c" should still create.
	press(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	press(t, m, tea.KeyPressMsg{Text: "c"})
	if m.Action() != ActionCreateProduct {
		t.Errorf("Action() = %q, want %q", m.Action(), ActionCreateProduct)
	}
}

func TestUnbuiltActionsShowNotice(t *testing.T) {
	m := newTestModel(t)
	press(t, m, stateLoadedMsg{state: &store.State{}})

	press(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Errorf("unbuilt action should not quit")
	}
	if m.Action() != ActionNone {
		t.Errorf("Action() = %q, want none", m.Action())
	}
	if !strings.Contains(viewString(m), "coming soon") {
		t.Errorf("expected coming soon notice")
	}
}

func TestLoadErrorShown(t *testing.T) {
	m := newTestModel(t)
	press(t, m, stateLoadedMsg{err: errors.New("catalog store unavailable")})

	if !strings.Contains(viewString(m), "catalog store unavailable") {
		t.Errorf("expected load error in view")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Text: "q"},
		{Code: tea.KeyEscape},
	} {
		m := newTestModel(t)
		if cmd := press(t, m, key); cmd == nil {
			t.Errorf("key %v should quit", key)
		}
	}
}
