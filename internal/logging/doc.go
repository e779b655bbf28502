// Package logging provides structured key/value logging for obaentry.
//
// Loggers are created from configuration:
//
//	log := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// or with logging.NewNop() where output is not wanted, which is the default
// for entries created without a logger.
//
// Every persist operation on an entry is tagged with a request ID, so all
// lines produced by one Save can be correlated:
//
//	reqLog := log.WithRequestID(logging.GenerateRequestID())
//	reqLog.Info("modify", "dn", dn, "changes", len(mods))
//
// Text output looks like:
//
//	2026-01-02T15:04:05Z [info] modify request_id=6f1c... changes=3 dn=cn=alice,dc=example,dc=com
//
// Extra fields are written in key order so that text output is stable.
package logging
