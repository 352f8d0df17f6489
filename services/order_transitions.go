package services

import (
	"backend/entity"
	"backend/pkg/metrics"

	"gorm.io/gorm"
)

// legalTransitions is the full state machine. Delivered and Cancelled
// are terminal; Ready cannot be cancelled anymore because the kitchen
// already finished the dishes.
var legalTransitions = map[string][]string{
	entity.StatusPlaced:    {entity.StatusConfirmed, entity.StatusCancelled},
	entity.StatusConfirmed: {entity.StatusPreparing, entity.StatusCancelled},
	entity.StatusPreparing: {entity.StatusReady, entity.StatusCancelled},
	entity.StatusReady:     {entity.StatusDelivered},
	entity.StatusDelivered: {},
	entity.StatusCancelled: {},
}

func transitionAllowed(from, to string) bool {
	for _, t := range legalTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Transition moves an order to a new status on behalf of staff. The
// transition table is checked first, then the write itself is a
// compare-and-swap so two concurrent staff actions cannot both win.
func (s *OrderService) Transition(ownerID, orderID uint, toName string) error {
	toID, ok := s.statusID(toName)
	if !ok {
		return ErrConflict
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderForOwner(tx, ownerID, orderID)
		if err != nil {
			return err
		}

		fromName := s.names[o.OrderStatusID]
		if !transitionAllowed(fromName, toName) {
			return ErrConflict
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.OrderStatusID, toID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}

		// Terminal states leave the staff board.
		if toName == entity.StatusDelivered || toName == entity.StatusCancelled {
			if err := s.Repo.DeactivateOrder(tx, o.ID); err != nil {
				return err
			}
		}

		metrics.StatusTransitions.WithLabelValues(toName).Inc()
		return nil
	})
}

// UpdateDetailStatus toggles one line item's active flag, owner-scoped.
// Deactivating a line removes it from the order's computed total.
func (s *OrderService) UpdateDetailStatus(ownerID, detailID uint, active bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		od, err := s.Repo.GetDetailForOwner(tx, ownerID, detailID)
		if err != nil {
			return err
		}
		return s.Repo.SetDetailActive(tx, od.ID, active)
	})
}

func (s *OrderService) statusID(name string) (uint, bool) {
	for id, n := range s.names {
		if n == name {
			return id, true
		}
	}
	return 0, false
}
