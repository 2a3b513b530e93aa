package service

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/velmara/heritage-panel/logger"
	"github.com/velmara/heritage-panel/web/websocket"
)

// Status is the dashboard status payload.
type Status struct {
	CPU            float64 `json:"cpu"`
	MemUsed        uint64  `json:"memUsed"`
	MemTotal       uint64  `json:"memTotal"`
	UptimeSeconds  int64   `json:"uptimeSeconds"`
	ConnectedAdmin int     `json:"connectedAdmins"`
	BroadcastsSent int64   `json:"broadcastsSent"`
}

// ServerService reports process and relay health for the dashboard.
type ServerService struct {
	hub       *websocket.Hub
	startTime time.Time
}

func NewServerService(hub *websocket.Hub) *ServerService {
	return &ServerService{hub: hub, startTime: time.Now()}
}

func (s *ServerService) GetStatus() *Status {
	status := &Status{
		UptimeSeconds:  int64(time.Since(s.startTime).Seconds()),
		ConnectedAdmin: s.hub.MemberCount(),
		BroadcastsSent: s.hub.BroadcastsSent(),
	}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.CPU = percents[0]
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.MemUsed = memInfo.Used
		status.MemTotal = memInfo.Total
	}
	return status
}
