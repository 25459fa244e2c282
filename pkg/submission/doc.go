// Package submission turns a sanitized form payload into a canonical,
// timestamped, uniquely identified record ready for delivery.
//
// Classification is driven by the payload's discriminator fields: the
// talentPool form type selects the talent-pool field set (fullName, email),
// anything else is validated as a contact or candidate submission (name,
// email, message). A payload that claims a kind but lacks that kind's
// required fields is rejected, not reclassified.
//
// Records are immutable once built and owned by the request that created
// them. There is no in-process store of past submissions.
package submission
