package domain

// Command names a mutating backend operation.
type Command string

// Commands.
const (
	CommandCreateOrder       Command = "createOrder"
	CommandMoveBot           Command = "moveBot"
	CommandUpdateOrderStatus Command = "updateOrderStatus"
	CommandCancelOrder       Command = "cancelOrder"
	CommandRebalanceOrders   Command = "rebalanceOrders"
	CommandStartAutoMovement Command = "startAutoMovement"
	CommandStopAutoMovement  Command = "stopAutoMovement"
)

// Idempotent reports whether repeating the command cannot duplicate its effect.
func (c Command) Idempotent() bool {
	switch c {
	case CommandUpdateOrderStatus, CommandCancelOrder, CommandStartAutoMovement, CommandStopAutoMovement:
		return true
	default:
		return false
	}
}
