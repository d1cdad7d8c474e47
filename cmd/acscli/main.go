// acscli is an interactive hub-side tester for ACS slave modules: it
// sends commands over the serial link and pretty-prints everything
// the module reports back.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/fatih/color"
	"go.bug.st/serial"

	"github.com/acslink/acs.go/pkg/proto"
)

var (
	portPath = flag.String("port", "/dev/ttyUSB0", "serial port connected to the slave module")
	baudRate = flag.Int("baud", 115200, "baud rate")
)

func main() {
	flag.Parse()

	port, err := serial.Open(*portPath, &serial.Mode{BaudRate: *baudRate})
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", *portPath, err)
		os.Exit(1)
	}

	s := &session{port: port}
	go s.listen()

	shell := ishell.New()
	shell.Println(color.CyanString("=== ACS slave tester ==="))
	shell.Println("listening on", *portPath)
	shell.SetPrompt("acs > ")
	shell.Set(sessionKey, s)
	for _, cmd := range commands {
		shell.AddCmd(cmd)
	}
	shell.Run()
}

type session struct {
	port serial.Port
}

const sessionKey = "$session"

func sessionFrom(c *ishell.Context) *session {
	return c.Get(sessionKey).(*session)
}

// send frames msg and writes it to the port.
func (s *session) send(c *ishell.Context, msg interface{}) {
	frame, err := proto.EncodeMessage(msg)
	if err != nil {
		c.Err(err)
		return
	}
	color.Yellow("OUT ---> %s", strings.TrimSpace(string(frame)))
	if _, err := s.port.Write(frame); err != nil {
		c.Err(err)
	}
}

// listen prints every inbound frame until the port closes.
func (s *session) listen() {
	scanner := bufio.NewScanner(s.port)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s.print(line)
	}
}

func (s *session) print(line string) {
	payload, err := proto.DecodeFrame(line)
	if err != nil {
		color.Red("unreadable: %s", line)
		return
	}
	msg, err := proto.ParseMessage(payload)
	if err != nil {
		color.Red("undecodable payload: %s", payload)
		return
	}
	in := "IN <--- "
	switch m := msg.(type) {
	case *proto.CardRead:
		color.Green("%sCARD_READ | hub:%d rdr:%d card:%s bits:%d", in, m.HubAddr, m.ReaderID, m.Card, m.Bits)
	case *proto.EventREX:
		color.Green("%sREX | hub:%d rdr:%d", in, m.HubAddr, m.ReaderID)
	case *proto.DoorContact:
		color.Green("%sDOOR_CONTACT | hub:%d rdr:%d state:%s", in, m.HubAddr, m.ReaderID, strings.ToUpper(m.State))
	case *proto.Heartbeat:
		color.White("%sHEARTBEAT | hub:%d", in, m.HubAddr)
	case *proto.Boot:
		color.Cyan("%sBOOT | uid:%s msg:%s", in, m.UID, m.Msg)
	case *proto.Identify:
		color.Cyan("%sIDENTIFY | uid:%s hub:%d readers:%d", in, m.UID, m.HubAddr, m.Readers)
	case *proto.AckSetAddress:
		color.Cyan("%sACK_SET_ADDRESS | uid:%s new_addr:%d status:%s", in, m.UID, m.NewAddr, m.Status)
	case *proto.EventError:
		color.Red("%sEVENT_ERROR | hub:%d rdr:%d error:%s", in, m.HubAddr, m.ReaderID, m.Error)
	default:
		color.Yellow("%sunknown message: %s", in, payload)
	}
}
