package awards

import "errors"

var ErrInvalidCategory = errors.New("award category not found in catalog")
var ErrVotingClosed = errors.New("voting period is closed")
var ErrInvalidVote = errors.New("voter and nominee are required")
