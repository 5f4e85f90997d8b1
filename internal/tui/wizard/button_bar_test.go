package wizard

import "testing"

func TestButtonBarFocusTraversal(t *testing.T) {
	bar := NewButtonBar(CreateBackNextButtons(true, true, "Next →"))

	if got := bar.FocusedButton(); got != ButtonNone {
		t.Errorf("expected no focus initially, got %v", got)
	}

	bar.FocusFirst()
	if got := bar.FocusedButton(); got != ButtonBack {
		t.Errorf("expected ButtonBack focused, got %v", got)
	}

	if !bar.FocusNext() {
		t.Fatal("expected FocusNext to land on Next")
	}
	if got := bar.FocusedButton(); got != ButtonNext {
		t.Errorf("expected ButtonNext focused, got %v", got)
	}

	if bar.FocusNext() {
		t.Error("expected FocusNext to walk off the end")
	}
	if got := bar.FocusedButton(); got != ButtonNone {
		t.Errorf("expected blur after walking off, got %v", got)
	}
}

func TestButtonBarSkipsDisabled(t *testing.T) {
	bar := NewButtonBar(CreateBackNextButtons(true, false, "Next →"))

	bar.FocusFirst()
	if got := bar.FocusedButton(); got != ButtonBack {
		t.Errorf("expected ButtonBack focused, got %v", got)
	}

	// Next is disabled, so forward traversal exits the bar.
	if bar.FocusNext() {
		t.Error("expected traversal to skip disabled Next and exit")
	}

	bar.FocusLast()
	if got := bar.FocusedButton(); got != ButtonBack {
		t.Errorf("expected FocusLast to land on Back (Next disabled), got %v", got)
	}
}

func TestButtonBarSetEnabled(t *testing.T) {
	bar := NewButtonBar(CreateBackNextButtons(false, true, "Next →"))

	bar.FocusFirst()
	if got := bar.FocusedButton(); got != ButtonNext {
		t.Errorf("expected ButtonNext focused (Back disabled), got %v", got)
	}

	bar.SetEnabled(int(ButtonNext), false)
	if got := bar.FocusedButton(); got != ButtonNone {
		t.Errorf("expected focus dropped from disabled button, got %v", got)
	}

	bar.SetEnabled(int(ButtonNext), true)
	bar.FocusFirst()
	if got := bar.FocusedButton(); got != ButtonNext {
		t.Errorf("expected ButtonNext focusable again, got %v", got)
	}
}

func TestCreateBackNextButtons(t *testing.T) {
	buttons := CreateBackNextButtons(false, true, "Publish")
	if len(buttons) != 2 {
		t.Fatalf("expected 2 buttons, got %d", len(buttons))
	}
	if buttons[0].State != ButtonDisabled {
		t.Error("expected Back disabled")
	}
	if buttons[1].Label != "Publish" || buttons[1].State != ButtonNormal {
		t.Errorf("unexpected next button: %+v", buttons[1])
	}
}
