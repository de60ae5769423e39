package catalog

// The 21-day programmes. Each line is an opening sentence the author is asked
// to continue in their own words.

var baseProgram = []string{
	"This morning began like any other, except for one small thing I almost missed.",
	"There is a door in my neighborhood I have never opened, and today I stood in front of it.",
	"The last message I never sent still sits in my drafts, and it starts like this.",
	"If my kitchen table could talk, the first story it would tell happened on a Tuesday.",
	"I kept the ticket stub for a reason I only understood much later.",
	"The smell of rain reminds me of a promise I made and almost kept.",
	"Somewhere in my closet is a jacket that belongs to a braver version of me.",
	"Today I walked past a stranger who was humming the song I needed to hear.",
	"The first thing I would rescue from my burning apartment is not what anyone expects.",
	"My grandmother's advice made no sense until the day it suddenly did.",
	"There is a photograph I can't throw away, though no one in it is smiling.",
	"The city is quietest at the hour when I am most awake.",
	"I once wrote my biggest fear on a napkin and left it in a cafe.",
	"The map I trust most was drawn by someone who never left home.",
	"Every list I make has one item I copy from yesterday and never finish.",
	"A letter arrived today addressed to the person I was ten years ago.",
	"The longest minute of my life happened in an elevator between two floors.",
	"I learned to say no in a language I barely speak.",
	"There is a bench in the park that knows more about me than my friends do.",
	"The recipe says to wait, and waiting is the ingredient I always skip.",
	"On the last day of the program I opened my first page again and laughed.",
}

var twentiesFemaleProgram = []string{
	"The lease said one year, but I signed it like a dare.",
	"My mother's voice on the phone asked one question and meant another.",
	"I wore the interview blazer to the grocery store just to feel dangerous.",
	"The group chat went silent right after I typed the honest thing.",
	"Rent was due the same week I learned what I actually wanted.",
	"My roommate labels her shelf of the fridge, and I label nothing, and that says everything.",
	"The first paycheck went to something sensible; the second did not.",
	"I still have the playlist from the summer everything changed.",
	"Someone at the party asked what I do, and I answered who I am instead.",
	"The plant on my windowsill survives on neglect and apologies.",
	"I practiced quitting in the mirror for a month before I did it.",
	"The city I swore was temporary started learning my name.",
	"My best friend moved away and left me her umbrella and her optimism.",
	"The dating app asked for five photos that explain me, which is four too many.",
	"I budgeted for everything except homesickness.",
	"The elevator small talk turned real somewhere between the fourth and ninth floor.",
	"I keep my degree in a tube and my doubts in a drawer.",
	"The night bus is where I do my best thinking and my worst texting.",
	"A stranger's compliment carried me through an entire Wednesday.",
	"I called my father to ask about taxes and we talked about everything else.",
	"The one-year lease ended, and I signed again, and this time it wasn't a dare.",
}

var twentiesMaleProgram = []string{
	"The gym membership was a promise I made to a mirror.",
	"My first commute took ninety minutes and taught me two things.",
	"The groomsman suit still hangs there, one wedding old and one size optimistic.",
	"I moved four boxes into the new place; three of them are still taped shut.",
	"My father shook my hand like a colleague and it broke something open.",
	"The fantasy league is the only place I answer messages immediately.",
	"I cooked for someone for the first time and set off only one alarm.",
	"The promotion came with a desk by the window and a question I can't shake.",
	"My oldest friend and I talk entirely in references now, and somehow it's enough.",
	"The barber asked the same as usual, and I said no, surprise me.",
	"I kept my student ID for the discounts, I tell people.",
	"The night I missed the last train home turned into the story I tell most.",
	"Rent, gas, groceries, and one line in the budget labeled someday.",
	"I learned more from the job I lost than the one I kept.",
	"The voicemail from my grandfather is two minutes I will never delete.",
	"A younger guy at work asked for my advice and I heard my own echo.",
	"The pickup game at the park has a roster that never needed writing down.",
	"I apologized first for the first time and the ceiling did not fall.",
	"The car I can't afford and the one I drive are both parked in my head.",
	"My mother still sends articles; I started reading them.",
	"The mirror got its promise kept, mostly, which counts.",
}
