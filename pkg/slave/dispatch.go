package slave

import (
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/acslink/acs.go/pkg/proto"
)

// dispatchLine validates the frame envelope of one received line and
// routes the payload. Malformed frames are dropped without any reply.
func (d *Device) dispatchLine(line string, now time.Time) {
	payload, err := proto.DecodeFrame(line)
	if err != nil {
		glog.V(2).Infof("dropping line: %v", err)
		return
	}
	d.dispatch(payload, now)
}

// dispatch routes one validated payload. Provisioning commands are
// evaluated before the address gate so a factory-default or
// misconfigured device can still be identified and assigned an
// address. Every rejection is silent on the wire: an error reply
// would leak configuration state to unauthenticated senders.
func (d *Device) dispatch(payload string, now time.Time) {
	cmd, err := proto.ParseCommand(payload)
	if err != nil {
		glog.V(2).Infof("dropping payload: %v", err)
		return
	}

	switch cmd.Cmd {
	case proto.CmdIdentify:
		d.send(proto.NewIdentify(d.uid, int(d.addr), readerCount))
		return
	case proto.CmdSetAddress:
		d.setAddress(cmd)
		return
	}

	if d.addr == Unconfigured || cmd.HubAddr != int(d.addr) || cmd.ReaderID != ReaderID {
		glog.V(2).Infof("dropping command %q: not addressed to this device", cmd.Cmd)
		return
	}

	switch cmd.Cmd {
	case proto.CmdFeedbackGrant:
		if !d.feedback.Trigger(Grant, now) {
			glog.V(1).Info("feedback busy, grant ignored")
		}
	case proto.CmdFeedbackDeny:
		if !d.feedback.Trigger(Deny, now) {
			glog.V(1).Info("feedback busy, deny ignored")
		}
	default:
		// unknown commands are ignored for forward compatibility
	}
}

func (d *Device) setAddress(cmd *proto.Command) {
	if !strings.EqualFold(cmd.TargetUID, d.uid) {
		glog.V(1).Infof("set_address for %q ignored", cmd.TargetUID)
		return
	}
	if cmd.NewAddr < 0 || cmd.NewAddr > 0xff {
		glog.Warningf("set_address with out-of-range address %d ignored", cmd.NewAddr)
		return
	}
	if err := d.addrStore.Store(byte(cmd.NewAddr)); err != nil {
		glog.Errorf("persisting address: %v", err)
		return
	}
	d.send(proto.NewAckSetAddress(d.uid, cmd.NewAddr))
	// the running state still carries the old address on purpose: a
	// full restart of the control flow applies the new one
	d.restart = true
}
