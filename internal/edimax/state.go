package edimax

import "context"

// GetState reads the relay state. Anything other than an exact ON or OFF
// in the reply is a protocol failure, never a default.
func (c *Client) GetState(ctx context.Context) (State, error) {
	resp, err := c.postCommand(ctx, buildGetStateCommand())
	if err != nil {
		return "", err
	}
	switch v := State(resp.value(attrPowerState)); v {
	case StateOn, StateOff:
		return v, nil
	default:
		return "", &ProtocolError{Reason: "unexpected state response"}
	}
}

// SetState switches the relay. Input is canonicalized case-insensitively,
// so SetState("on") and SetState("ON") produce identical request bodies.
func (c *Client) SetState(ctx context.Context, state State) error {
	st, err := ParseState(string(state))
	if err != nil {
		return err
	}
	resp, err := c.postCommand(ctx, buildSetStateCommand(st))
	if err != nil {
		return err
	}
	if resp.value(attrPowerState) != "OK" {
		return &ProtocolError{Reason: "device rejected state change"}
	}
	return nil
}
