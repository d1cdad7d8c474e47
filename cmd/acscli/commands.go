package main

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/acslink/acs.go/pkg/proto"
)

var commands = []*ishell.Cmd{
	&identifyCmd,
	&setAddrCmd,
	&grantCmd,
	&denyCmd,
	&rawCmd,
}

var identifyCmd = ishell.Cmd{
	Name: "identify",
	Help: "ask every attached module to identify itself",
	Func: func(c *ishell.Context) {
		sessionFrom(c).send(c, &proto.Command{Type: proto.TypeCommand, Cmd: proto.CmdIdentify})
	},
}

var setAddrCmd = ishell.Cmd{
	Name: "setaddr",
	Help: "UID ADDR - assign a hub address to the module with UID",
	Func: func(c *ishell.Context) {
		if len(c.Args) != 2 {
			c.Err(fmt.Errorf("usage: setaddr UID ADDR"))
			return
		}
		addr, err := strconv.Atoi(c.Args[1])
		if err != nil || addr < 1 || addr > 255 {
			c.Err(fmt.Errorf("ADDR must be 1..255"))
			return
		}
		sessionFrom(c).send(c, &proto.Command{
			Type:      proto.TypeCommand,
			Cmd:       proto.CmdSetAddress,
			TargetUID: c.Args[0],
			NewAddr:   addr,
		})
	},
}

var grantCmd = ishell.Cmd{
	Name: "grant",
	Help: "HUB [RDR] - play the access-granted feedback",
	Func: feedbackFunc(proto.CmdFeedbackGrant),
}

var denyCmd = ishell.Cmd{
	Name: "deny",
	Help: "HUB [RDR] - play the access-denied feedback",
	Func: feedbackFunc(proto.CmdFeedbackDeny),
}

func feedbackFunc(cmd string) func(*ishell.Context) {
	return func(c *ishell.Context) {
		if len(c.Args) < 1 {
			c.Err(fmt.Errorf("usage: %s HUB [RDR]", cmd))
			return
		}
		hub, err := strconv.Atoi(c.Args[0])
		if err != nil {
			c.Err(fmt.Errorf("invalid HUB: %v", err))
			return
		}
		rdr := 1
		if len(c.Args) > 1 {
			if rdr, err = strconv.Atoi(c.Args[1]); err != nil {
				c.Err(fmt.Errorf("invalid RDR: %v", err))
				return
			}
		}
		sessionFrom(c).send(c, &proto.Command{
			Type:     proto.TypeCommand,
			HubAddr:  hub,
			ReaderID: rdr,
			Cmd:      cmd,
		})
	}
}

var rawCmd = ishell.Cmd{
	Name: "raw",
	Help: "PAYLOAD - frame and send an arbitrary payload",
	Func: func(c *ishell.Context) {
		if len(c.Args) != 1 {
			c.Err(fmt.Errorf("usage: raw PAYLOAD (quote it)"))
			return
		}
		s := sessionFrom(c)
		frame, err := proto.EncodeFrame([]byte(c.Args[0]))
		if err != nil {
			c.Err(err)
			return
		}
		if _, err := s.port.Write(frame); err != nil {
			c.Err(err)
		}
	},
}
