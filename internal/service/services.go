// Package service holds the client-side domain services. Each service owns
// one backend resource: it issues the HTTP calls through the gateway and
// keeps an in-memory mirror of the server's confirmed state for the view
// layer to read.
package service

import (
	"github.com/societyhub/societyhub/internal/adapter"
	"github.com/societyhub/societyhub/internal/logger"
)

type ClientServices struct {
	Flats          *FlatService
	Residents      *ResidentService
	Complaints     *ComplaintService
	Maintenance    *MaintenanceService
	Notices        *NoticeService
	AccessRequests *AccessRequestService
	Visitors       *VisitorService
	RefreshJob     RefreshJob
}

func NewClientServices(gw adapter.Gateway, log *logger.Logger) *ClientServices {
	flats := NewFlatService(gw, log)
	residents := NewResidentService(gw, log)
	complaints := NewComplaintService(gw, log)
	maintenance := NewMaintenanceService(gw, log)
	notices := NewNoticeService(gw, log)
	accessRequests := NewAccessRequestService(gw, log)
	visitors := NewVisitorService(gw, log)

	return &ClientServices{
		Flats:          flats,
		Residents:      residents,
		Complaints:     complaints,
		Maintenance:    maintenance,
		Notices:        notices,
		AccessRequests: accessRequests,
		Visitors:       visitors,
		RefreshJob: NewRefreshJob(log,
			flats, residents, complaints, maintenance, notices, accessRequests, visitors),
	}
}
