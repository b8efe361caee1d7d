// Package jobs provides scheduled background tasks for the purchasing service.
//
// Jobs run on github.com/robfig/cron/v3 with six-field (seconds) specs.
//
// # Available Jobs
//
// OverdueOrdersJob looks for orders that are not finalized and whose expected
// delivery date is before today. It logs a warning per owner and sets the
// purchasing_orders_overdue gauge.
//
// # Usage
//
//	job := jobs.NewOverdueOrdersJob(queries.NewGetOverdueOrdersQueryHandler(db), m, logger)
//	jobManager := jobs.NewJobManager(job, cfg.OverdueCron, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick tries again. A spec that cron
// cannot parse makes StartAll fail.
package jobs
