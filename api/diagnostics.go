package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wiralabs/campaign-api/apperr"
	"github.com/wiralabs/campaign-api/constant"
	"github.com/wiralabs/campaign-api/domain/campaign"
	appLogger "github.com/wiralabs/campaign-api/infrastructure/logger"
	"gorm.io/gorm"
)

// Diagnostics hosts the fault-injection endpoints. Each route manufactures
// one failure category on demand so external scripts can verify the error
// contract — status code, envelope shape, and log severity — without a real
// outage. No endpoint touches actual infrastructure.
type Diagnostics struct {
	responder *apperr.Responder
	validate  *validator.Validate
}

// NewDiagnostics creates the diagnostic handler
func NewDiagnostics(responder *apperr.Responder) *Diagnostics {
	return &Diagnostics{
		responder: responder,
		validate:  validator.New(),
	}
}

// TestError triggers the Internal catch-all.
func (d *Diagnostics) TestError(w http.ResponseWriter, r *http.Request) {
	d.logInjection(r, constant.RouteTestError)

	err := errors.New("simulated failure for log pipeline verification")
	d.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
}

// TestTableMissing simulates a query against a dropped table. The raw driver
// message is what classification keys on, same as a genuine schema fault.
func (d *Diagnostics) TestTableMissing(w http.ResponseWriter, r *http.Request) {
	d.logInjection(r, constant.RouteTestTableMissing)

	err := errors.New("no such table: missing_campaigns_table")
	d.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
}

// TestDBUnavailable simulates a database connection failure.
func (d *Diagnostics) TestDBUnavailable(w http.ResponseWriter, r *http.Request) {
	d.logInjection(r, constant.RouteTestDBDown)

	err := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	d.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
}

// TestNullReference performs a real nil dereference. The recovery middleware
// catches the panic and routes it through the classifier, proving that even
// an unguarded handler yields the envelope shape.
func (d *Diagnostics) TestNullReference(w http.ResponseWriter, r *http.Request) {
	d.logInjection(r, constant.RouteTestNullRef)

	var c *campaign.Campaign
	_, _ = w.Write([]byte(c.Name)) // nil dereference, recovered upstream
}

// TestValidation runs the validator against empty input to produce genuine
// validator.ValidationErrors.
func (d *Diagnostics) TestValidation(w http.ResponseWriter, r *http.Request) {
	d.logInjection(r, constant.RouteTestValidation)

	err := d.validate.Struct(campaign.CreateInput{})
	d.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
}

// TestNotFound simulates a lookup miss via the ORM's sentinel.
func (d *Diagnostics) TestNotFound(w http.ResponseWriter, r *http.Request) {
	d.logInjection(r, constant.RouteTestNotFound)

	err := fmt.Errorf("campaign lookup: %w", gorm.ErrRecordNotFound)
	d.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
}

func (d *Diagnostics) logInjection(r *http.Request, route string) {
	appLogger.CtxDebug(r.Context(), constant.MsgFaultInjected, appLogger.LoggerInfo{
		ContextFunction: constant.CtxDiagnostics,
		Data: map[string]interface{}{
			constant.DataPath: route,
		},
	})
}
