package telegram

import "fmt"

// Reply texts sent back to users.
const (
	ReplyHelp = "Hello! Here with me you can open boxes and earn more points:\n\n" +
		"/points - Check how many points you have.\n" +
		"/add_points [quantity] - Add points to your account.\n" +
		"/open_box - Open a box of random points.\n" +
		"/reset_points - Reset your points to zero.\n\n" +
		"Please use these commands to interact with me."

	ReplyNoPermission    = "You do not have permission to execute this command."
	ReplyAddPointsUsage  = "Please specify the number of points to be added."
	ReplyNotEnoughPoints = "You do not have enough points to open a box."
	ReplyResetDone       = "User's points have been reset to zero."
	ReplyResetUsage      = "Please specify the user's ID."
	ReplyFailure         = "Something went wrong, please try again later."
)

func replyBalance(points int64) string {
	return fmt.Sprintf("You have %d points.", points)
}

func replyPointsAdded(amount int64) string {
	return fmt.Sprintf("%d points have been added to your account.", amount)
}

func replyBoxFound(reward int64) string {
	return fmt.Sprintf("You opened a box and found: %d points.", reward)
}

func replyBoxEarned(reward, balance int64) string {
	return fmt.Sprintf("You earned %d extra points. Now you have %d points.", reward, balance)
}
