package core

import (
	"context"
	"fmt"
	"time"

	"github.com/dop251/goja"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/bizimtransfer-mcp/log"
	"github.com/va6996/bizimtransfer-mcp/tools"
)

// DateInput defines the input for the date tool
type DateInput struct {
	Expression string `json:"expression" description:"JavaScript expression to calculate a date. Variable 'now' is available as current timestamp in milliseconds."`
}

// DateOutput is a resolved date in the formats search_transfers and list_reservations accept
type DateOutput struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Weekday string `json:"weekday"`
}

// DateTool turns relative dates ("next Friday") into concrete booking dates
type DateTool struct {
	Now      func() time.Time
	Location *time.Location
}

// NewDateTool creates a new DateTool and registers it
func NewDateTool(gk *genkit.Genkit, registry *tools.Registry) *DateTool {
	t := &DateTool{
		Now:      time.Now,
		Location: time.Local,
	}

	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*DateInput, *DateOutput](
		gk,
		t.Name(),
		t.Description(),
		func(ctx *ai.ToolContext, input *DateInput) (*DateOutput, error) {
			return t.Resolve(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input, err := tools.DecodeArgs[DateInput](args)
		if err != nil {
			return nil, err
		}
		if input.Expression == "" {
			return nil, fmt.Errorf("missing expression")
		}
		return t.Resolve(ctx, input)
	})

	return t
}

func (t *DateTool) Name() string {
	return "resolve_date"
}

func (t *DateTool) Description() string {
	return `Executes JavaScript expression to calculate dates. Variable 'now' is available holding the current timestamp (milliseconds).
Return a Date object or ISO string. The last expression is the return value.
The result is returned as date (YYYY-MM-DD) and time (HH:MM), ready for pickup_date/pickup_time or reservation date ranges.
Examples:
- Next Friday: "var d = new Date(now); d.setDate(d.getDate() + (12 - d.getDay()) % 7); if(d.getDay() !== 5 || d <= now) d.setDate(d.getDate() + 7); d"
- Tomorrow: "new Date(now + 86400000)"`
}

// Resolve runs the expression and formats the result in the tool's location
func (t *DateTool) Resolve(ctx context.Context, input *DateInput) (*DateOutput, error) {
	res, err := t.Execute(ctx, input)
	if err != nil {
		return nil, err
	}
	loc := t.Location
	if loc == nil {
		loc = time.Local
	}
	local := res.In(loc)
	return &DateOutput{
		Date:    local.Format("2006-01-02"),
		Time:    local.Format("15:04"),
		Weekday: local.Weekday().String(),
	}, nil
}

func (t *DateTool) Execute(ctx context.Context, input *DateInput) (*time.Time, error) {
	if input == nil {
		return nil, fmt.Errorf("input is required")
	}
	expression := input.Expression
	log.Debugf(ctx, "DateTool executing expression: %s", expression)

	vm := goja.New()
	err := vm.Set("now", t.Now().UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to set 'now': %w", err)
	}

	val, err := vm.RunString(expression)
	if err != nil {
		log.Debugf(ctx, "DateTool RunString error: %v", err)
		return nil, fmt.Errorf("js execution failed: %w", err)
	}

	exported := val.Export()
	log.Debugf(ctx, "DateTool exported result: %v (Type: %T)", exported, exported)

	// If explicitly nil/undefined
	if exported == nil {
		return nil, fmt.Errorf("result is null or undefined")
	}

	// Check if it's a time.Time (Goja converts JS Date to time.Time)
	if dateObj, ok := exported.(time.Time); ok {
		return &dateObj, nil
	}

	// If it's a string, try to parse it
	if str, ok := exported.(string); ok {
		if t, err := time.Parse(time.RFC3339, str); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("result is not a valid Date object or ISO string")
}
