package edimax

import (
	"context"
	"strconv"
)

// Metering attributes only exist on the SP-2101W. The SP-1101W answers
// these reads with empty or non-numeric values, which surface as
// *ProtocolError rather than a zero reading.

// NowPower reads the instantaneous power draw in watts.
func (c *Client) NowPower(ctx context.Context) (float64, error) {
	return c.meterValue(ctx, attrNowPower)
}

// NowCurrent reads the instantaneous current in amps.
func (c *Client) NowCurrent(ctx context.Context) (float64, error) {
	return c.meterValue(ctx, attrNowCurrent)
}

// NowEnergyDay reads the cumulative energy for the current day in kWh.
func (c *Client) NowEnergyDay(ctx context.Context) (float64, error) {
	return c.meterValue(ctx, attrNowEnergyDay)
}

// NowEnergyWeek reads the cumulative energy for the current week in kWh.
func (c *Client) NowEnergyWeek(ctx context.Context) (float64, error) {
	return c.meterValue(ctx, attrNowEnergyWeek)
}

// NowEnergyMonth reads the cumulative energy for the current month in kWh.
func (c *Client) NowEnergyMonth(ctx context.Context) (float64, error) {
	return c.meterValue(ctx, attrNowEnergyMonth)
}

func (c *Client) meterValue(ctx context.Context, attr string) (float64, error) {
	resp, err := c.postCommand(ctx, buildMeterCommand(attr))
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(resp.value(attr), 64)
	if err != nil {
		return 0, &ProtocolError{Reason: "non-numeric meter response"}
	}
	return f, nil
}
