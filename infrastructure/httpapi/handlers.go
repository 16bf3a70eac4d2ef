package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// CreateJob opens a job funded by the caller.
func (s *Server) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	job, err := s.engine.CreateJob(r.Context(), interfaces.CreateJobParams{
		Creator:     principalFrom(r.Context()),
		Title:       req.Title,
		Description: req.Description,
		Bounty:      req.Bounty,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// ListJobs lists jobs, optionally filtered by creator and state.
func (s *Server) ListJobs(w http.ResponseWriter, r *http.Request) {
	var filter entities.JobFilter
	query := r.URL.Query()

	if creator := query.Get("creator"); creator != "" {
		if !common.IsHexAddress(creator) {
			s.writeError(w, r, invalidInput("creator", "must be an address"))
			return
		}
		addr := common.HexToAddress(creator)
		filter.Creator = &addr
	}
	if state := query.Get("state"); state != "" {
		js := entities.JobState(state)
		if !js.IsValid() {
			s.writeError(w, r, invalidInput("state", "unknown job state"))
			return
		}
		filter.State = &js
	}
	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			s.writeError(w, r, invalidInput("limit", "must be a non-negative integer"))
			return
		}
		filter.Limit = n
	}

	jobs, err := s.queries.ListJobs(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// GetJob returns a job with its referrals.
func (s *Server) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uintParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.queries.GetJobView(r.Context(), jobID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// JobHistory returns the ledger events of a job in commit order.
func (s *Server) JobHistory(w http.ResponseWriter, r *http.Request) {
	jobID, err := uintParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	events, err := s.queries.JobHistory(r.Context(), jobID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// WithdrawJob returns the pot to the creator and closes the job.
func (s *Server) WithdrawJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uintParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.engine.WithdrawJob(r.Context(), interfaces.WithdrawJobParams{
		JobID:  jobID,
		Caller: principalFrom(r.Context()),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// StakeReferral stakes a referral by the caller on a job.
func (s *Server) StakeReferral(w http.ResponseWriter, r *http.Request) {
	jobID, err := uintParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req dto.StakeReferralRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	referral, err := s.engine.StakeReferral(r.Context(), interfaces.StakeReferralParams{
		JobID:    jobID,
		Referrer: principalFrom(r.Context()),
		Pitch:    req.Pitch,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.StakeReferralResponse{
		ReferralID: referral.ID,
		ClaimHash:  referral.ClaimHash,
		Referral:   referral,
	})
}

// ClaimStatus reports whether a claim hash is still claimable.
func (s *Server) ClaimStatus(w http.ResponseWriter, r *http.Request) {
	hash, err := hashParam(r, "hash")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	claimable, err := s.queries.IsReferralClaimable(r.Context(), hash)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ClaimStatusResponse{ClaimHash: hash, Claimable: claimable})
}

// ClaimReferral claims a referral for the caller.
func (s *Server) ClaimReferral(w http.ResponseWriter, r *http.Request) {
	hash, err := hashParam(r, "hash")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	referral, err := s.engine.ClaimReferral(r.Context(), interfaces.ClaimReferralParams{
		ClaimHash: hash,
		Candidate: principalFrom(r.Context()),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, referral)
}

// GetReferral returns a referral.
func (s *Server) GetReferral(w http.ResponseWriter, r *http.Request) {
	referralID, err := uintParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	referral, err := s.queries.GetReferral(r.Context(), referralID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, referral)
}

// AdjudicateReferral applies the caller's decision to a submitted referral.
func (s *Server) AdjudicateReferral(w http.ResponseWriter, r *http.Request) {
	referralID, err := uintParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req dto.AdjudicateRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	decision, err := entities.ParseDecision(req.Decision)
	if err != nil {
		s.writeError(w, r, errors.NewDomainError(errors.ErrInvalidDecision, err.Error()))
		return
	}

	result, err := s.engine.AdjudicateReferral(r.Context(), interfaces.AdjudicateReferralParams{
		ReferralID: referralID,
		Decision:   decision,
		Caller:     principalFrom(r.Context()),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// RecordDispute records a dispute raised by the caller.
func (s *Server) RecordDispute(w http.ResponseWriter, r *http.Request) {
	jobID, err := uintParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req dto.RecordDisputeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	dispute, err := s.disputes.RecordDispute(r.Context(), interfaces.RecordDisputeParams{
		JobID:    jobID,
		Reporter: principalFrom(r.Context()),
		Target:   req.Target,
		Reason:   req.Reason,
		Evidence: req.Evidence,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dispute)
}

// ListDisputes lists the disputes of a job.
func (s *Server) ListDisputes(w http.ResponseWriter, r *http.Request) {
	jobID, err := uintParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	disputes, err := s.disputes.ListDisputes(r.Context(), jobID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, disputes)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return invalidInput("body", "invalid payload: "+err.Error())
	}
	return nil
}

func uintParam(r *http.Request, name string) (uint64, error) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil || v == 0 {
		return 0, invalidInput(name, "must be a positive integer")
	}
	return v, nil
}

func hashParam(r *http.Request, name string) (common.Hash, error) {
	raw, err := hexutil.Decode(chi.URLParam(r, name))
	if err != nil || len(raw) != common.HashLength {
		return common.Hash{}, invalidInput(name, "must be a 32-byte hex string")
	}
	return common.BytesToHash(raw), nil
}
