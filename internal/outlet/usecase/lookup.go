package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coffee-assistant/internal/outlet"
)

// Lookup answers a planner-resolved outlet question from the store.
func (uc *implUseCase) Lookup(ctx context.Context, location, infoType string) (string, error) {
	if location == "" {
		return outlet.MsgNeedSpecificOutlet, nil
	}

	if location == outlet.CityPetalingJaya || location == outlet.CityKualaLumpur {
		return uc.lookupCity(ctx, location, infoType)
	}

	o, err := uc.repo.GetByArea(ctx, location)
	if err != nil {
		uc.l.Errorf(ctx, "internal.outlet.usecase.Lookup: %v", err)
		return "", fmt.Errorf("%w: %w", outlet.ErrUnavailable, err)
	}
	if o.ID == 0 {
		return fmt.Sprintf(outlet.MsgUnknownOutlet, location), nil
	}

	opens, closes := displayTime(o.OpeningTime), displayTime(o.ClosingTime)
	switch infoType {
	case outlet.InfoOpeningHours:
		return fmt.Sprintf(outlet.MsgOpens, location, opens), nil
	case outlet.InfoClosingHours:
		return fmt.Sprintf(outlet.MsgCloses, location, closes), nil
	case outlet.InfoHours:
		return fmt.Sprintf(outlet.MsgOpensAndCloses, location, opens, closes), nil
	default:
		return fmt.Sprintf(outlet.MsgGeneral, location, o.Summary), nil
	}
}

func (uc *implUseCase) lookupCity(ctx context.Context, city, infoType string) (string, error) {
	if infoType != "" {
		return fmt.Sprintf(outlet.MsgCityWithInfo, city, strings.ReplaceAll(infoType, "_", " ")), nil
	}

	outlets, err := uc.repo.ListByCity(ctx, city)
	if err != nil {
		uc.l.Errorf(ctx, "internal.outlet.usecase.lookupCity: %v", err)
		return "", fmt.Errorf("%w: %w", outlet.ErrUnavailable, err)
	}
	if len(outlets) == 0 {
		return fmt.Sprintf(outlet.MsgCityNoOutlets, city), nil
	}

	names := make([]string, len(outlets))
	for i, o := range outlets {
		names[i] = strings.TrimPrefix(o.Name, "ZUS Coffee ")
	}
	return fmt.Sprintf(outlet.MsgCityWithoutInfo, city, joinNames(names)), nil
}

// displayTime renders "09:00" as "9:00 AM". Unparsable values pass through.
func displayTime(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

func joinNames(names []string) string {
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
