package itemstore

// InvalidIdentifier - Custom error to inform that an item identifier is malformed
type InvalidIdentifier struct {
	msg string
}

// Error - Used to notify that an item identifier is malformed
func (E InvalidIdentifier) Error() string {
	if E.msg == "" {
		return "invalid identifier"
	}
	return E.msg
}

// DuplicateIdentifier - Custom error to inform that an item with the same identifier is already stored
type DuplicateIdentifier struct {
	msg string
}

// Error - Used to notify that an item with the same identifier is already stored
func (E DuplicateIdentifier) Error() string {
	if E.msg == "" {
		return "duplicate identifier"
	}
	return E.msg
}

// NotFound - Custom error to inform that no stored item matched an identifier
type NotFound struct {
	msg string
}

// Error - Used to notify that no stored item matched an identifier
func (E NotFound) Error() string {
	if E.msg == "" {
		return "item not found"
	}
	return E.msg
}
