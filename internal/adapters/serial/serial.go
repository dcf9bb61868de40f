// Package serial connects the reporter to UART devices: the console the
// cycle lines are written to and microcontrollers that stream samples.
package serial

import (
	"fmt"

	goserial "go.bug.st/serial"
)

// DefaultBaudRate matches the firmware console speed
const DefaultBaudRate = 9600

// Ports returns the names of the serial ports present on this host
func Ports() ([]string, error) {
	ports, err := goserial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return ports, nil
}

func open(name string, baudRate int) (goserial.Port, error) {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	port, err := goserial.Open(name, &goserial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}
	return port, nil
}
