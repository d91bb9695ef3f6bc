package api

// rootReason surfaces a validation message to the client. Validation errors
// carry stable user-facing text; everything else is mapped before reaching
// this helper.
func rootReason(err error) string {
	return err.Error()
}
