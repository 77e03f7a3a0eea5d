package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
)

type object = map[string]interface{}

// ValidateBody checks the shape of a request body before anything is decoded into typed values.
// Checks run in a fixed order and the first failing one is reported: the device before the link
// stations, x before y, coordinates before reach.
func ValidateBody(body []byte) error {
	root, err := decodeGeneric(body)
	if err != nil {
		return NewInvalidInputError(MsgInvalidBody)
	}

	request, ok := root.(object)
	if !ok {
		return NewInvalidInputError(MsgInvalidBody)
	}

	device, ok := objectField(request, "device")
	if !ok {
		return NewInvalidInputError(MsgInvalidDevice)
	}
	deviceCoordinates, ok := objectField(device, "coordinates")
	if !ok {
		return NewInvalidInputError(MsgInvalidDeviceCoordinates)
	}
	if !integerField(deviceCoordinates, "x") {
		return NewInvalidInputError(MsgInvalidDeviceX)
	}
	if !integerField(deviceCoordinates, "y") {
		return NewInvalidInputError(MsgInvalidDeviceY)
	}

	linkStations, ok := request["linkStations"].([]interface{})
	if !ok {
		return NewInvalidInputError(MsgInvalidLinkStationsList)
	}

	for _, entry := range linkStations {
		linkStation, ok := entry.(object)
		if !ok {
			return NewInvalidInputError(MsgInvalidLinkStation)
		}
		coordinates, ok := objectField(linkStation, "coordinates")
		if !ok {
			return NewInvalidInputError(MsgInvalidLinkStationCoordinates)
		}
		if !integerField(coordinates, "x") {
			return NewInvalidInputError(MsgInvalidLinkStationX)
		}
		if !integerField(coordinates, "y") {
			return NewInvalidInputError(MsgInvalidLinkStationY)
		}
		if !integerField(linkStation, "reach") {
			return NewInvalidInputError(MsgInvalidLinkStationReach)
		}
	}

	return nil
}

// decodeGeneric decodes exactly one JSON value, keeping numbers as their literal text.
func decodeGeneric(body []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return value, nil
}

func objectField(parent object, key string) (object, bool) {
	child, ok := parent[key].(object)
	return child, ok
}

// integerField reports whether parent[key] is a JSON number written as an integer.
// Fractional or exponent literals such as 3.0 or 3e0 are rejected.
func integerField(parent object, key string) bool {
	number, ok := parent[key].(json.Number)
	if !ok {
		return false
	}
	_, err := strconv.ParseInt(number.String(), 10, 64)
	return err == nil
}
