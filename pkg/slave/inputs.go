package slave

import (
	"github.com/golang/glog"

	"github.com/acslink/acs.go/pkg/hal"
	"github.com/acslink/acs.go/pkg/proto"
)

// InputPins are the monitored door inputs. A nil pin is simply not
// monitored.
type InputPins struct {
	// REX is the request-to-exit button, active low.
	REX hal.InputPin
	// Contact is the door contact, high when the door is open.
	Contact hal.InputPin
}

// pollInputs samples the door inputs once and reports edges upstream.
// Nothing is reported while the device is unconfigured.
func (d *Device) pollInputs() {
	if d.addr == Unconfigured {
		return
	}
	if d.inputs.REX != nil {
		level := d.inputs.REX.Get()
		if !level && d.lastREX {
			glog.V(1).Info("REX pressed")
			d.send(proto.NewEventREX(int(d.addr), ReaderID))
		}
		d.lastREX = level
	}
	if d.inputs.Contact != nil {
		open := d.inputs.Contact.Get()
		// the first sample after boot always reports, so the hub
		// learns the initial door state
		if !d.haveContact || open != d.lastContact {
			state := proto.DoorClosed
			if open {
				state = proto.DoorOpen
			}
			glog.V(1).Infof("door contact %s", state)
			d.send(proto.NewDoorContact(int(d.addr), ReaderID, state))
		}
		d.haveContact, d.lastContact = true, open
	}
}
