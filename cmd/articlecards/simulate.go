package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"articlecards/internal/modules/articles/dto"
)

type dispatcher interface {
	Click(ctx context.Context, card int, part, kind string) (dto.DispatchOutput, error)
	KeyDown(ctx context.Context, key string) (dto.DispatchOutput, error)
}

type event struct {
	raw  string
	key  string
	card int
	part string
	kind string
}

func parseEvent(raw string) (event, error) {
	ev := event{raw: raw}
	fields := strings.Split(strings.TrimSpace(raw), ":")
	switch name := strings.ToLower(fields[0]); name {
	case "outside":
		if len(fields) != 1 {
			return event{}, fmt.Errorf("event %q: outside takes no arguments", raw)
		}
		ev.part = "outside"
		return ev, nil
	case "key":
		if len(fields) != 2 || fields[1] == "" {
			return event{}, fmt.Errorf("event %q: expected key:<name>", raw)
		}
		ev.key = fields[1]
		return ev, nil
	case "title", "download", "body", "menu":
		if len(fields) < 2 || len(fields) > 3 || (len(fields) == 3 && name != "menu") {
			return event{}, fmt.Errorf("event %q: expected %s:<card>", raw, name)
		}
		card, err := strconv.Atoi(fields[1])
		if err != nil || card < 0 {
			return event{}, fmt.Errorf("event %q: invalid card index %q", raw, fields[1])
		}
		ev.card = card
		ev.part = name
		if len(fields) == 3 {
			ev.part = "menu-item"
			ev.kind = strings.ToLower(fields[2])
		}
		return ev, nil
	default:
		return event{}, fmt.Errorf("event %q: unknown event %q", raw, fields[0])
	}
}

func (e event) apply(ctx context.Context, d dispatcher) (dto.DispatchOutput, error) {
	if e.key != "" {
		return d.KeyDown(ctx, e.key)
	}
	return d.Click(ctx, e.card, e.part, e.kind)
}

func summarize(out dto.DispatchOutput) string {
	var flags []string
	if out.DefaultPrevented {
		flags = append(flags, "prevented")
	}
	if out.PropagationStopped {
		flags = append(flags, "stopped")
	}
	s := fmt.Sprintf("expanded=%s menu=%s", index(out.Page.ExpandedIndex), index(out.Page.OpenMenuIndex))
	if len(flags) > 0 {
		s += " [" + strings.Join(flags, ",") + "]"
	}
	return s
}

func index(i int) string {
	if i < 0 {
		return "-"
	}
	return strconv.Itoa(i)
}
