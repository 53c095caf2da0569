package orderparser

import (
	"fmt"
	"strings"

	"github.com/TedDriggs/diplomacy-sub000/internal/order"
)

func parseMainCommand(words []string) (order.Command, error) {
	if len(words) == 0 {
		return nil, ErrTooFewWords
	}
	switch strings.ToLower(words[0]) {
	case "hold", "holds":
		return order.Hold{}, nil
	case "->":
		return parseMoveWords(words[1:])
	case "supports":
		return parseSupportWords(words[1:])
	case "convoys":
		return parseConvoyWords(words[1:])
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, words[0])
	}
}

func parseMoveWords(w []string) (order.Move, error) {
	switch len(w) {
	case 1:
		dest, err := parseRegionKey(w[0])
		if err != nil {
			return order.Move{}, err
		}
		return order.Move{Dest: dest}, nil
	case 3:
		if !strings.EqualFold(w[1], "via") || !strings.EqualFold(w[2], "convoy") {
			return order.Move{}, fmt.Errorf("%w: %s", ErrMalformedMove, strings.Join(w, " "))
		}
		dest, err := parseRegionKey(w[0])
		if err != nil {
			return order.Move{}, err
		}
		return order.Move{Dest: dest, Convoy: order.MustUseConvoy}, nil
	default:
		return order.Move{}, fmt.Errorf("%w: %s", ErrMalformedMove, strings.Join(w, " "))
	}
}

func parseSupportWords(w []string) (order.Support, error) {
	switch len(w) {
	case 2:
		ut, err := parseUnitType(w[0])
		if err != nil {
			return order.Support{}, err
		}
		region, err := parseRegionKey(w[1])
		if err != nil {
			return order.Support{}, err
		}
		return order.Support{Target: order.SupportHold{Unit: ut, Region: region}}, nil
	case 4:
		if w[2] != "->" {
			return order.Support{}, fmt.Errorf("%w: %s", ErrMalformedSupport, strings.Join(w, " "))
		}
		ut, err := parseUnitType(w[0])
		if err != nil {
			return order.Support{}, err
		}
		from, err := parseRegionKey(w[1])
		if err != nil {
			return order.Support{}, err
		}
		dest, err := parseRegionKey(w[3])
		if err != nil {
			return order.Support{}, err
		}
		return order.Support{Target: order.SupportMove{Unit: ut, From: from, Dest: dest}}, nil
	default:
		return order.Support{}, fmt.Errorf("%w: %s", ErrMalformedSupport, strings.Join(w, " "))
	}
}

func parseConvoyWords(w []string) (order.Convoy, error) {
	if len(w) != 3 || w[1] != "->" {
		return order.Convoy{}, fmt.Errorf("%w: %s", ErrMalformedConvoy, strings.Join(w, " "))
	}
	from, err := parseRegionKey(w[0])
	if err != nil {
		return order.Convoy{}, err
	}
	to, err := parseRegionKey(w[2])
	if err != nil {
		return order.Convoy{}, err
	}
	return order.Convoy{From: from, To: to}, nil
}

func parseRetreatCommand(w []string) (order.Command, error) {
	if len(w) == 0 {
		return nil, ErrTooFewWords
	}
	switch strings.ToLower(w[0]) {
	case "hold", "holds":
		return order.RetreatHold{}, nil
	case "->":
		if len(w) != 2 {
			return nil, fmt.Errorf("%w: %s", ErrMalformedMove, strings.Join(w, " "))
		}
		dest, err := parseRegionKey(w[1])
		if err != nil {
			return nil, err
		}
		return order.RetreatMove{Dest: dest}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, w[0])
	}
}

func parseBuildCommand(w []string) (order.Command, error) {
	if len(w) == 0 {
		return nil, ErrTooFewWords
	}
	switch strings.ToLower(w[0]) {
	case "build":
		return order.Build{}, nil
	case "disband":
		return order.Disband{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, w[0])
	}
}
