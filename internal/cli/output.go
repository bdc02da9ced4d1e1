package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		for i, u := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printUser(u)
		}
	case AuthResult:
		o.printAuthResult(v)
	case TrainingSession:
		o.printSession(v)
	case []TrainingSession:
		o.printSessions(v)
	case Accessory:
		o.printAccessory(v)
	case Exercise:
		o.printExercise(v)
	case []Exercise:
		for i, e := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printExercise(e)
		}
	case Routine:
		o.printRoutine(v)
	case []Routine:
		for i, r := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printRoutine(r)
		}
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Username           string `json:"username"`
	Role               string `json:"role"`
	Strength           int    `json:"strength"`
	Endurance          int    `json:"endurance"`
	Flexibility        int    `json:"flexibility"`
	AccessoryPurchased bool   `json:"accessory_purchased"`
	AccessoryName      string `json:"accessory_name,omitempty"`
}

// AuthResult is the account summary plus token returned by the auth
// endpoints
type AuthResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// TrainingSession response type
type TrainingSession struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Accessory response type
type Accessory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UserID      string    `json:"user_id"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// Exercise response type
type Exercise struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Category          string `json:"category,omitempty"`
	StrengthImpact    int    `json:"strength_impact"`
	EnduranceImpact   int    `json:"endurance_impact"`
	FlexibilityImpact int    `json:"flexibility_impact"`
}

// Routine response type
type Routine struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	UserID      string   `json:"user_id"`
	ExerciseIDs []string `json:"exercise_ids"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Name, u.ID)
	fmt.Printf("Username: %s\n", u.Username)
	fmt.Printf("Role: %s\n", u.Role)
	fmt.Printf("Stats: strength=%d endurance=%d flexibility=%d\n", u.Strength, u.Endurance, u.Flexibility)
	if u.AccessoryPurchased {
		fmt.Printf("Accessory: %s\n", u.AccessoryName)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("User: %s (%s)\n", a.Name, a.ID)
	fmt.Printf("Username: %s\n", a.Username)
	fmt.Printf("Role: %s\n", a.Role)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printSession(s TrainingSession) {
	fmt.Printf("%s  %s\n", s.Timestamp.Format(time.RFC3339), s.Description)
}

func (o *Output) printSessions(sessions []TrainingSession) {
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded")
		return
	}
	for _, s := range sessions {
		o.printSession(s)
	}
}

func (o *Output) printAccessory(a Accessory) {
	fmt.Printf("Accessory: %s (%s)\n", a.Name, a.ID)
	fmt.Printf("Purchased: %s\n", a.PurchasedAt.Format(time.RFC3339))
}

func (o *Output) printExercise(e Exercise) {
	fmt.Printf("Exercise: %s (%s)\n", e.Name, e.ID)
	if e.Category != "" {
		fmt.Printf("Category: %s\n", e.Category)
	}
	if e.Description != "" {
		fmt.Printf("Description: %s\n", e.Description)
	}
	fmt.Printf("Impact: strength=%d endurance=%d flexibility=%d\n", e.StrengthImpact, e.EnduranceImpact, e.FlexibilityImpact)
}

func (o *Output) printRoutine(r Routine) {
	fmt.Printf("Routine: %s (%s)\n", r.Name, r.ID)
	if len(r.ExerciseIDs) > 0 {
		fmt.Printf("Exercises: %s\n", strings.Join(r.ExerciseIDs, ", "))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
