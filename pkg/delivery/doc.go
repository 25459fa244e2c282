// Package delivery makes canonical submission records visible to staff.
//
// Two backends implement the Backend interface: one renders a record into a
// fixed HTML notification and sends it through a transactional mailer with
// the submitter as reply-to, the other serializes the record to JSON in a
// durable document store. Which backend runs is a deployment decision made
// once at startup; the request path never branches on the mechanism.
//
// An email backend without credentials reports a Skipped outcome instead of
// an error so incomplete deployments still acknowledge submissions. Every
// other failure is terminal for the submission and surfaces to the caller -
// there are no retries here.
package delivery
