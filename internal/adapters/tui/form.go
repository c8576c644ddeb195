package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/engine/dashboard"
)

const (
	fieldName = iota
	fieldPhone
	fieldRestaurant
	fieldDelivery
	fieldCount
)

var fieldLabels = [fieldCount]string{"Customer", "Phone", "Restaurant", "Delivery"}

// formAction is what the model should do after the form handled a key.
type formAction uint8

const (
	formContinue formAction = iota
	formCancel
	formSubmit
)

// orderForm collects a new order. Pickup is derived from the restaurant type.
type orderForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

func newOrderForm() *orderForm {
	f := &orderForm{}
	placeholders := [fieldCount]string{"name", "optional", "RAMEN, CURRY, PIZZA or SUSHI", "x,y"}
	limits := [fieldCount]int{100, 20, 10, 5}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 30
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Focus()
	return f
}

func (f *orderForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// Update handles one key. Submission is reported, not performed.
func (f *orderForm) Update(msg tea.KeyMsg) (formAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return formCancel, nil
	case "tab", "down":
		return formContinue, f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return formContinue, f.setFocus(f.focus - 1)
	case "enter":
		if f.focus < fieldCount-1 {
			return formContinue, f.setFocus(f.focus + 1)
		}
		return formSubmit, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.err = ""
	return formContinue, cmd
}

func (f *orderForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// pickup resolves the pickup cell from the typed restaurant type.
func (f *orderForm) pickup(v *dashboard.View) (domain.RestaurantType, domain.Coord, error) {
	t, ok := domain.ParseRestaurantType(f.value(fieldRestaurant))
	if !ok {
		return "", domain.Coord{}, &domain.ValidationError{
			Field:  "restaurant_type",
			Reason: "must be one of RAMEN, CURRY, PIZZA, SUSHI",
		}
	}
	at, ok := v.RestaurantOf(t)
	if !ok {
		return "", domain.Coord{}, &domain.ValidationError{
			Field:  "restaurant_type",
			Reason: "no " + string(t) + " restaurant on the map",
		}
	}
	return t, at, nil
}

// Request builds and validates the order. A failure is kept for display.
func (f *orderForm) Request(v *dashboard.View) (domain.CreateOrderRequest, error) {
	req, err := f.request(v)
	if err != nil {
		f.err = domain.DetailOf(err)
		return domain.CreateOrderRequest{}, err
	}
	f.err = ""
	return req, nil
}

func (f *orderForm) request(v *dashboard.View) (domain.CreateOrderRequest, error) {
	t, _ := domain.ParseRestaurantType(f.value(fieldRestaurant))
	pickup, havePickup := v.RestaurantOf(t)
	delivery, deliveryErr := domain.ParseCoord(f.value(fieldDelivery))

	req := domain.NewCreateOrderRequest(f.value(fieldName), f.value(fieldPhone), t, pickup, delivery)
	if err := req.Validate(); err != nil {
		return domain.CreateOrderRequest{}, err
	}
	if !havePickup {
		return domain.CreateOrderRequest{}, &domain.ValidationError{
			Field:  "restaurant_type",
			Reason: "no " + string(t) + " restaurant on the map",
		}
	}
	if deliveryErr != nil {
		return domain.CreateOrderRequest{}, &domain.ValidationError{Field: "delivery", Reason: "expected x,y within the grid"}
	}
	return req, nil
}

func (f *orderForm) View(v *dashboard.View) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("New order") + "\n\n")
	for i := range f.inputs {
		label := fieldLabels[i]
		if i == f.focus {
			label = selectedCellStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(lipgloss.NewStyle().Width(14).Render(label) + f.inputs[i].View() + "\n")
	}

	if _, at, err := f.pickup(v); err == nil {
		b.WriteString(mutedStyle.Render("  Pickup      "+at.String()) + "\n")
	} else {
		b.WriteString(mutedStyle.Render("  Pickup      from restaurant") + "\n")
	}

	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render(f.err) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("enter next/submit · tab switch field · esc cancel"))
	return formStyle.Render(b.String())
}
