package edimax

import "context"

type SystemInfo struct {
	Model           string `json:"model"`
	FirmwareVersion string `json:"firmwareVersion"`
	MACAddress      string `json:"macAddress"`
	Name            string `json:"name"`
}

// SystemInfo reads model, firmware version, MAC address and device name.
// Works on both hardware variants.
func (c *Client) SystemInfo(ctx context.Context) (SystemInfo, error) {
	resp, err := c.postCommand(ctx, buildSystemInfoCommand())
	if err != nil {
		return SystemInfo{}, err
	}
	info := SystemInfo{
		Model:           resp.leaves[attrModel],
		FirmwareVersion: resp.leaves[attrFirmware],
		MACAddress:      resp.leaves[attrMAC],
		Name:            resp.leaves[attrName],
	}
	if info == (SystemInfo{}) {
		return SystemInfo{}, &ProtocolError{Reason: "unexpected system info response"}
	}
	return info, nil
}
