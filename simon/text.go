// This file is part of Simonvid.
//
// Simonvid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Simonvid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Simonvid.  If not, see <https://www.gnu.org/licenses/>.

package simon

// text written to the line. line endings are "\n\r" throughout
const (
	menuBanner = "**************************************************\n\r" +
		"*                SIMON SAYS GAME                 *\n\r" +
		"**************************************************\n\r" +
		"\n\r"
	menuEntry  = "%c - Play Simon Says %s\n\r"
	menuQuit   = "q - Quit\n\r"
	menuPrompt = "\n\r\n\rEnter a selection:"
	menuBad    = "\n\rInvalid Selection"

	rules    = "\n\rRules: Repeat the pattern shown in the screen!"
	pressKey = "\n\rPress Enter To Continue\n"

	playing  = "Displaying Colors..."
	played   = "\n\rDisplaying Color Done! What is the sequence? (MAKE SURE ALL CAPS)..."
	checking = "\n\rChecking Answer! Please wait!"
	correct  = "\n\rCorrect!"
	lose     = "\n\rYou Lose!!"
	win      = "\n\rYou Win!!"
)

// menu selection that quits the program
const quitKey = 'q'
